package repository

import (
	"github.com/shopspring/decimal"

	"github.com/MrRohit-01/barcode-stock-system/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar los descuentos de stock dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija el stock del producto (usado dentro de transacciones,
	// después de GetForUpdate).
	UpdateStock(productID string, quantity decimal.Decimal) error
	List(search string, limit, offset int) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	Delete(id string) error
}
