package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago soportados (enumeración cerrada).
const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
	PaymentMethodUPI  = "upi"
)

// ValidPaymentMethod reporta si method es un método de pago soportado.
func ValidPaymentMethod(method string) bool {
	return method == PaymentMethodCash || method == PaymentMethodCard || method == PaymentMethodUPI
}

// Estados de una transacción de venta.
const (
	TransactionStatusCompleted = "completed"
)

// Transaction representa una venta completada e inmutable: snapshot de los
// ítems vendidos, totales calculados en el servidor, método de pago y cajero.
// Number es el consecutivo legible (TXN...) que imprime el recibo.
type Transaction struct {
	ID            string
	Number        string
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal // Subtotal + Tax, siempre
	PaymentMethod string          // cash | card | upi
	CustomerName  string          // opcional
	CustomerPhone string          // opcional
	CashierID     string
	Status        string
	CreatedAt     time.Time
	Items         []*TransactionItem
}

// TransactionItem es una línea de la venta con el producto congelado al
// momento de la transacción (nombre, SKU y precio unitario de entonces).
type TransactionItem struct {
	ID            string
	TransactionID string
	ProductID     string
	Name          string
	SKU           string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	Subtotal      decimal.Decimal // Quantity * UnitPrice
}
