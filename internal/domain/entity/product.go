package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un producto del catálogo.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product representa un producto vendible del catálogo. SKU y Barcode son
// únicos; StockQuantity es el estado mutable que ajustan los movimientos de
// inventario y el checkout (nunca por debajo de cero).
type Product struct {
	ID             string
	Name           string
	Description    string
	SKU            string // código único
	Barcode        string // código único, resuelto por el flujo de escaneo
	Category       string
	Brand          string
	PriceCost      decimal.Decimal
	PriceRetail    decimal.Decimal
	PriceWholesale *decimal.Decimal // opcional
	StockQuantity  decimal.Decimal
	MinStockLevel  decimal.Decimal // umbral para el reporte de stock bajo
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLowStock indica si el producto está en o por debajo de su umbral mínimo.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity.LessThanOrEqual(p.MinStockLevel)
}
