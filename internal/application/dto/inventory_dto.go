package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body para POST /api/inventory/movement.
type RecordMovementRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Type      string          `json:"type" validate:"required,oneof=in out"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	Reason    string          `json:"reason" validate:"required,oneof=purchase sale return adjustment"`
	Reference string          `json:"reference"`
}

// MovementResponse salida de un movimiento de inventario.
type MovementResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason"`
	Reference   string          `json:"reference,omitempty"`
	PerformedBy string          `json:"performedBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
