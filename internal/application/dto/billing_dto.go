package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionItemRequest línea del carrito enviada por el cliente.
// UnitPrice es opcional: cero significa "usar el precio de venta actual".
type TransactionItemRequest struct {
	ProductID string          `json:"product" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice decimal.Decimal `json:"price"`
}

// CustomerInfo datos opcionales del cliente para el recibo.
type CustomerInfo struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CreateTransactionRequest body para POST /api/billing/transaction.
// Subtotal/Tax/Total enviados por el cliente se ignoran: el servidor siempre
// recalcula los totales (los del cliente son solo para mostrar en pantalla).
type CreateTransactionRequest struct {
	Items         []TransactionItemRequest `json:"items" validate:"required,min=1"`
	CustomerInfo  *CustomerInfo            `json:"customerInfo,omitempty"`
	PaymentMethod string                   `json:"paymentMethod" validate:"required,oneof=cash card upi"`
	Subtotal      *decimal.Decimal         `json:"subtotal,omitempty"` // ignorado
	Tax           *decimal.Decimal         `json:"tax,omitempty"`      // ignorado
	Total         *decimal.Decimal         `json:"total,omitempty"`    // ignorado
}

// TransactionItemResponse línea de la venta con el snapshot del producto.
type TransactionItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID            string                    `json:"id"`
	Number        string                    `json:"transactionId"`
	Items         []TransactionItemResponse `json:"items"`
	Subtotal      decimal.Decimal           `json:"subtotal"`
	Tax           decimal.Decimal           `json:"tax"`
	Total         decimal.Decimal           `json:"total"`
	PaymentMethod string                    `json:"paymentMethod"`
	Customer      *CustomerInfo             `json:"customer,omitempty"`
	CashierID     string                    `json:"cashier"`
	Status        string                    `json:"status"`
	CreatedAt     time.Time                 `json:"createdAt"`
}

// TransactionListResponse lista paginada de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
