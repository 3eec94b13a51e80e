package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una entrada del catálogo de venta.
// Barcode es único cuando está presente; vacío significa "sin código de barras".
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Barcode     string // único, opcional (cadena vacía = sin barcode)
	Price       decimal.Decimal
	Quantity    int  // existencias en tienda
	Visible     bool // aparece en el catálogo público
	Promo       bool // marcado como promoción
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
