package dto

import "github.com/shopspring/decimal"

// AddToCartRequest agrega (incrementa) una línea del carrito.
type AddToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest fija la cantidad de forma absoluta; ≤ 0 elimina la línea.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse línea con el precio vigente del catálogo.
type CartLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Extension   decimal.Decimal `json:"extension"`
}

// CartResponse carrito completo del usuario con el total proyectado.
type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}
