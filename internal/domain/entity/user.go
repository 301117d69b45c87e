package entity

import "time"

// Roles válidos para User (enumeración cerrada).
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
	RoleStaff   = "staff"
)

// ValidRole reporta si role es uno de los roles soportados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCashier || role == RoleStaff
}

// User representa un usuario del sistema (cajero, bodeguero o administrador).
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, cashier, staff
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
