package billing

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrRohit-01/barcode-stock-system/internal/application/dto"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/entity"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/repository"
)

// CheckoutUseCase convierte un carrito en una venta durable descontando el
// stock de cada producto en una sola transacción de BD: o se persiste la venta
// completa con todos sus descuentos, o no se persiste nada.
type CheckoutUseCase struct {
	txRunner    BillingTxRunner
	inventoryUC InventoryUseCase
	txRepo      repository.TransactionRepository
	taxRate     decimal.Decimal // porcentaje fijo aplicado al subtotal (ej. 18)
}

// NewCheckoutUseCase construye el caso de uso. taxRatePct es el porcentaje de
// impuesto fijo aplicado al subtotal.
func NewCheckoutUseCase(
	txRunner BillingTxRunner,
	inventoryUC InventoryUseCase,
	txRepo repository.TransactionRepository,
	taxRatePct decimal.Decimal,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		txRunner:    txRunner,
		inventoryUC: inventoryUC,
		txRepo:      txRepo,
		taxRate:     taxRatePct,
	}
}

// generateNumber genera el consecutivo legible de la venta: TXN + epoch ms + sufijo.
func generateNumber(now time.Time) string {
	return fmt.Sprintf("TXN%d%03d", now.UnixMilli(), rand.Intn(1000))
}

// CreateTransaction ejecuta el checkout:
//
//  1. Valida carrito no vacío, cantidades positivas y método de pago soportado.
//  2. Dentro de una transacción de BD, por cada ítem bloquea la fila del
//     producto, verifica stock suficiente, descuenta y registra el movimiento
//     de salida (motivo "sale", referencia al número de venta).
//  3. Recalcula subtotal, impuesto y total en el servidor; los totales que
//     envíe el cliente se ignoran.
//  4. Persiste la venta inmutable con el snapshot de cada ítem y hace Commit.
//
// Cualquier fallo (stock insuficiente, producto inexistente, error de
// escritura) aborta la transacción completa: ni descuentos parciales ni venta
// huérfana.
func (uc *CheckoutUseCase) CreateTransaction(ctx context.Context, cashierID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if cashierID == "" {
		return nil, domain.ErrUnauthorized
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	number := generateNumber(now)
	tx := &entity.Transaction{
		ID:            uuid.New().String(),
		Number:        number,
		PaymentMethod: in.PaymentMethod,
		CashierID:     cashierID,
		Status:        entity.TransactionStatusCompleted,
		CreatedAt:     now,
	}
	if in.CustomerInfo != nil {
		tx.CustomerName = in.CustomerInfo.Name
		tx.CustomerPhone = in.CustomerInfo.Phone
	}

	err := uc.txRunner.RunBilling(ctx, func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
	) error {
		subtotal := decimal.Zero
		for _, item := range in.Items {
			// Bloqueo de fila + verificación + descuento + movimiento de salida.
			// Si el stock no alcanza, retorna ErrInsufficientStock y se hace
			// rollback de todo lo anterior.
			product, err := uc.inventoryUC.RecordSaleOutInTx(
				movRepo, productRepo,
				item.ProductID, cashierID, number,
				item.Quantity,
				now,
			)
			if err != nil {
				return err
			}

			unitPrice := item.UnitPrice
			if unitPrice.IsZero() {
				unitPrice = product.PriceRetail
			}
			lineSubtotal := item.Quantity.Mul(unitPrice)
			subtotal = subtotal.Add(lineSubtotal)

			tx.Items = append(tx.Items, &entity.TransactionItem{
				ID:            uuid.New().String(),
				TransactionID: tx.ID,
				ProductID:     product.ID,
				Name:          product.Name,
				SKU:           product.SKU,
				Quantity:      item.Quantity,
				UnitPrice:     unitPrice,
				Subtotal:      lineSubtotal,
			})
		}

		tx.Subtotal = subtotal
		tx.Tax = subtotal.Mul(uc.taxRate).Div(decimal.NewFromInt(100)).Round(2)
		tx.Total = tx.Subtotal.Add(tx.Tax)

		if err := txRepo.Create(tx); err != nil {
			return err
		}
		for _, item := range tx.Items {
			if err := txRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toTransactionResponse(tx), nil
}

// GetTransaction obtiene una venta por su número (TXN...) o por su ID.
func (uc *CheckoutUseCase) GetTransaction(ctx context.Context, ref string) (*dto.TransactionResponse, error) {
	tx, err := uc.findTransaction(ref)
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// ListTransactions lista ventas con paginación (más recientes primero).
func (uc *CheckoutUseCase) ListTransactions(ctx context.Context, limit, offset int) (*dto.TransactionListResponse, error) {
	list, err := uc.txRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		txItems, err := uc.txRepo.GetItems(tx.ID)
		if err != nil {
			return nil, err
		}
		tx.Items = txItems
		items = append(items, *toTransactionResponse(tx))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// findTransaction resuelve la referencia primero como número y luego como ID,
// y carga los ítems.
func (uc *CheckoutUseCase) findTransaction(ref string) (*entity.Transaction, error) {
	tx, err := uc.txRepo.GetByNumber(ref)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		tx, err = uc.txRepo.GetByID(ref)
		if err != nil {
			return nil, err
		}
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.txRepo.GetItems(tx.ID)
	if err != nil {
		return nil, err
	}
	tx.Items = items
	return tx, nil
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	resp := &dto.TransactionResponse{
		ID:            tx.ID,
		Number:        tx.Number,
		Subtotal:      tx.Subtotal,
		Tax:           tx.Tax,
		Total:         tx.Total,
		PaymentMethod: tx.PaymentMethod,
		CashierID:     tx.CashierID,
		Status:        tx.Status,
		CreatedAt:     tx.CreatedAt,
		Items:         make([]dto.TransactionItemResponse, 0, len(tx.Items)),
	}
	if tx.CustomerName != "" || tx.CustomerPhone != "" {
		resp.Customer = &dto.CustomerInfo{Name: tx.CustomerName, Phone: tx.CustomerPhone}
	}
	for _, item := range tx.Items {
		resp.Items = append(resp.Items, dto.TransactionItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}
	return resp
}
