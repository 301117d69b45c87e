package repository

import (
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para ventas.
// Las transacciones son inmutables: no hay Update ni Delete.
type TransactionRepository interface {
	Create(transaction *entity.Transaction) error
	CreateItem(item *entity.TransactionItem) error
	GetByID(id string) (*entity.Transaction, error)
	// GetByNumber busca por el consecutivo legible (TXN...).
	GetByNumber(number string) (*entity.Transaction, error)
	GetItems(transactionID string) ([]*entity.TransactionItem, error)
	List(limit, offset int) ([]*entity.Transaction, error)
}
