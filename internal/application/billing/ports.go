package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrRohit-01/barcode-stock-system/internal/domain/entity"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción que incluye
// los repos de inventario y ventas (para el checkout atómico).
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// InventoryUseCase contrato mínimo del motor de inventario que necesita el
// checkout: descuento de stock por venta dentro de la transacción del caller.
type InventoryUseCase interface {
	RecordSaleOutInTx(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
		productID, userID, reference string,
		quantity decimal.Decimal,
		now time.Time,
	) (*entity.Product, error)
}

// StoreInfo datos de la tienda para el encabezado del recibo.
type StoreInfo struct {
	Name    string
	Address string
	Phone   string
}

// ReceiptPDFGenerator genera el recibo imprimible de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, tx *entity.Transaction, cashierName string, store StoreInfo) ([]byte, error)
}
