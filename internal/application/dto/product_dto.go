package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto en el catálogo.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Barcode     string          `json:"barcode"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Visible     bool            `json:"visible"`
	Promo       bool            `json:"promo"`
}

// UpdateProductRequest campos opcionales a modificar.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Barcode     *string          `json:"barcode"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Visible     *bool            `json:"visible"`
	Promo       *bool            `json:"promo"`
}

// ProductResponse proyección de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Barcode     string          `json:"barcode,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Visible     bool            `json:"visible"`
	Promo       bool            `json:"promo"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
