package billing

import (
	"context"
	"fmt"

	"github.com/MrRohit-01/barcode-stock-system/internal/domain"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/entity"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/repository"
)

// ReceiptUseCase genera el recibo imprimible (PDF) de una venta completada.
type ReceiptUseCase struct {
	txRepo    repository.TransactionRepository
	userRepo  repository.UserRepository
	generator ReceiptPDFGenerator
	store     StoreInfo
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(
	txRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
	generator ReceiptPDFGenerator,
	store StoreInfo,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		txRepo:    txRepo,
		userRepo:  userRepo,
		generator: generator,
		store:     store,
	}
}

// DownloadReceipt recupera la venta (por número o ID), resuelve el nombre del
// cajero y genera el PDF del recibo.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la venta no existe.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, ref string) (pdfBytes []byte, filename string, err error) {
	tx, err := uc.txRepo.GetByNumber(ref)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
	}
	if tx == nil {
		tx, err = uc.txRepo.GetByID(ref)
		if err != nil {
			return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
		}
	}
	if tx == nil {
		return nil, "", domain.ErrNotFound
	}

	items, err := uc.txRepo.GetItems(tx.ID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener ítems: %w", err)
	}
	tx.Items = items

	cashierName := cashierDisplayName(uc.userRepo, tx.CashierID)

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, tx, cashierName, uc.store)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("recibo_%s.pdf", tx.Number)
	return pdfBytes, filename, nil
}

// cashierDisplayName devuelve el username del cajero, o su ID como fallback.
func cashierDisplayName(userRepo repository.UserRepository, cashierID string) string {
	var user *entity.User
	if u, err := userRepo.GetByID(cashierID); err == nil {
		user = u
	}
	if user == nil {
		return cashierID
	}
	return user.Username
}
