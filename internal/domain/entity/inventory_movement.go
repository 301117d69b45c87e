package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// Motivos de movimiento.
const (
	MovementReasonPurchase   = "purchase"
	MovementReasonSale       = "sale"
	MovementReasonReturn     = "return"
	MovementReasonAdjustment = "adjustment"
)

// ValidMovementType reporta si type es un tipo soportado.
func ValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut
}

// ValidMovementReason reporta si reason es un motivo soportado.
func ValidMovementReason(r string) bool {
	switch r {
	case MovementReasonPurchase, MovementReasonSale, MovementReasonReturn, MovementReasonAdjustment:
		return true
	}
	return false
}

// InventoryMovement representa un movimiento de stock inmutable (entrada o
// salida) con su motivo y referencia. Se crea en ajustes manuales y como
// subproducto de una venta (referencia = número de transacción).
type InventoryMovement struct {
	ID          string
	ProductID   string
	Type        string          // in | out
	Quantity    decimal.Decimal // siempre positiva; el signo lo da Type
	Reason      string          // purchase | sale | return | adjustment
	Reference   string
	PerformedBy string
	CreatedAt   time.Time
}
