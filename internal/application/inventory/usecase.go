package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrRohit-01/barcode-stock-system/internal/domain"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/entity"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos de inventario de forma
// transaccional (in/out) con bloqueo de fila (SELECT FOR UPDATE) y
// Commit/Rollback. Un movimiento "out" nunca deja el stock negativo.
type RecordMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.InventoryMovementRepository
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		movRepo:     movRepo,
	}
}

// MovementInput entrada para registrar un movimiento de inventario.
type MovementInput struct {
	UserID    string
	ProductID string
	Type      string // in | out
	Quantity  decimal.Decimal
	Reason    string // purchase | sale | return | adjustment
	Reference string
}

// RecordMovement inicia una transacción, bloquea la fila del producto, aplica
// el ajuste de stock según el tipo y guarda el registro en el libro de
// movimientos. Commit si todo ok, Rollback si algo falla.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (*entity.InventoryMovement, error) {
	if input.ProductID == "" || !entity.ValidMovementType(input.Type) || !entity.ValidMovementReason(input.Reason) {
		return nil, domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var created *entity.InventoryMovement

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto para evitar condiciones de carrera
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQty := product.StockQuantity
		switch input.Type {
		case entity.MovementTypeIn:
			newQty = newQty.Add(input.Quantity)
		case entity.MovementTypeOut:
			if product.StockQuantity.LessThan(input.Quantity) {
				return domain.ErrInsufficientStock
			}
			newQty = newQty.Sub(input.Quantity)
		}
		if err := productRepo.UpdateStock(product.ID, newQty); err != nil {
			return err
		}

		mov := &entity.InventoryMovement{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			Type:        input.Type,
			Quantity:    input.Quantity,
			Reason:      input.Reason,
			Reference:   input.Reference,
			PerformedBy: input.UserID,
			CreatedAt:   now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RecordSaleOutInTx ejecuta la salida por venta de un ítem usando los
// repositorios del caller (misma transacción del checkout): bloquea la fila,
// verifica stock suficiente, descuenta y registra el movimiento con motivo
// "sale" y referencia al número de transacción. Devuelve el producto bloqueado
// para que el caller tome el snapshot (nombre, SKU, precio).
func (uc *RecordMovementUseCase) RecordSaleOutInTx(
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
	productID, userID, reference string,
	quantity decimal.Decimal,
	now time.Time,
) (*entity.Product, error) {
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.StockQuantity.LessThan(quantity) {
		return nil, domain.ErrInsufficientStock
	}
	newQty := product.StockQuantity.Sub(quantity)
	if err := productRepo.UpdateStock(product.ID, newQty); err != nil {
		return nil, err
	}
	mov := &entity.InventoryMovement{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		Type:        entity.MovementTypeOut,
		Quantity:    quantity,
		Reason:      entity.MovementReasonSale,
		Reference:   reference,
		PerformedBy: userID,
		CreatedAt:   now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	product.StockQuantity = newQty
	return product, nil
}

// ListMovements lista movimientos (filtro opcional por producto) con paginación.
func (uc *RecordMovementUseCase) ListMovements(ctx context.Context, productID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	return uc.movRepo.List(productID, limit, offset)
}

// LowStock devuelve los productos con stock en o por debajo de su umbral mínimo.
func (uc *RecordMovementUseCase) LowStock(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.ListLowStock()
}
