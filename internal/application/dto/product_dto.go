package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductPrice precios del producto (costo, venta y mayorista opcional).
type ProductPrice struct {
	Cost      decimal.Decimal  `json:"cost"`
	Retail    decimal.Decimal  `json:"retail"`
	Wholesale *decimal.Decimal `json:"wholesale,omitempty"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	SKU           string          `json:"sku" validate:"required,min=1,max=100"`
	Barcode       string          `json:"barcode" validate:"required,min=1,max=100"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	Price         ProductPrice    `json:"price"`
	StockQuantity decimal.Decimal `json:"stockQuantity"`
	MinStockLevel decimal.Decimal `json:"minStockLevel"`
}

// UpdateProductRequest entrada para actualizar un producto. El stock no se
// edita aquí: se ajusta vía movimientos de inventario.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	Category      *string          `json:"category"`
	Brand         *string          `json:"brand"`
	Price         *ProductPrice    `json:"price"`
	MinStockLevel *decimal.Decimal `json:"minStockLevel"`
	Status        *string          `json:"status"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	SKU           string          `json:"sku"`
	Barcode       string          `json:"barcode"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	Price         ProductPrice    `json:"price"`
	StockQuantity decimal.Decimal `json:"stockQuantity"`
	MinStockLevel decimal.Decimal `json:"minStockLevel"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CheckSKUResponse resultado de la verificación de unicidad de un SKU.
type CheckSKUResponse struct {
	SKU    string `json:"sku"`
	Exists bool   `json:"exists"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
