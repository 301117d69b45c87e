package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MrRohit-01/barcode-stock-system/internal/domain/entity"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, number, subtotal, tax, total, payment_method,
		customer_name, customer_phone, cashier_id, status, created_at`

// TransactionRepo implementación de TransactionRepository (usable con pool o tx).
// Las ventas son inmutables: solo INSERT y SELECT.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transactions (id, number, subtotal, tax, total, payment_method,
			customer_name, customer_phone, cashier_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.Number, tx.Subtotal, tx.Tax, tx.Total, tx.PaymentMethod,
		nullIfEmpty(tx.CustomerName), nullIfEmpty(tx.CustomerPhone),
		tx.CashierID, tx.Status, tx.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("transaction number already exists: %w", err)
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la venta.
func (r *TransactionRepo) CreateItem(item *entity.TransactionItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transaction_items (id, transaction_id, product_id, name, sku, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TransactionID, item.ProductID, item.Name, item.SKU,
		item.Quantity, item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert transaction item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID (sin ítems).
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	return r.getOne(`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
}

// GetByNumber obtiene una venta por su consecutivo legible (TXN...), sin ítems.
func (r *TransactionRepo) GetByNumber(number string) (*entity.Transaction, error) {
	return r.getOne(`SELECT `+transactionColumns+` FROM transactions WHERE number = $1`, number)
}

func (r *TransactionRepo) getOne(query string, arg any) (*entity.Transaction, error) {
	var t entity.Transaction
	var customerName, customerPhone *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&t.ID, &t.Number, &t.Subtotal, &t.Tax, &t.Total, &t.PaymentMethod,
		&customerName, &customerPhone, &t.CashierID, &t.Status, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if customerName != nil {
		t.CustomerName = *customerName
	}
	if customerPhone != nil {
		t.CustomerPhone = *customerPhone
	}
	return &t, nil
}

// GetItems obtiene las líneas de una venta.
func (r *TransactionRepo) GetItems(transactionID string) ([]*entity.TransactionItem, error) {
	query := `
		SELECT id, transaction_id, product_id, name, sku, quantity, unit_price, subtotal
		FROM transaction_items WHERE transaction_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("get transaction items: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransactionItem
	for rows.Next() {
		var item entity.TransactionItem
		if err := rows.Scan(&item.ID, &item.TransactionID, &item.ProductID, &item.Name, &item.SKU,
			&item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan transaction item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// List lista ventas con paginación (más recientes primero, sin ítems).
func (r *TransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		var customerName, customerPhone *string
		if err := rows.Scan(&t.ID, &t.Number, &t.Subtotal, &t.Tax, &t.Total, &t.PaymentMethod,
			&customerName, &customerPhone, &t.CashierID, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if customerName != nil {
			t.CustomerName = *customerName
		}
		if customerPhone != nil {
			t.CustomerPhone = *customerPhone
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
