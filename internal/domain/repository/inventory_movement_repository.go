package repository

import (
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para el libro
// de movimientos de inventario (append-only).
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	GetByID(id string) (*entity.InventoryMovement, error)
	List(productID string, limit, offset int) ([]*entity.InventoryMovement, error)
}
