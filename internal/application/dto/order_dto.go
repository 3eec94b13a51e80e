package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest convierte el carrito del usuario en una orden.
type CreateOrderRequest struct {
	PaymentMethod string `json:"payment_method"` // cash | card | transfer
}

// OrderItemResponse línea snapshot de la orden.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Extension decimal.Decimal `json:"extension"`
}

// OrderResponse proyección de una orden con sus líneas.
type OrderResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"user_id"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method"`
	Total         decimal.Decimal     `json:"total"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// OrderListResponse página de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ConfirmPaymentResponse resultado de la confirmación condicional.
// Confirmed=false significa "ya confirmada o inexistente" (cero filas afectadas).
type ConfirmPaymentResponse struct {
	Success   bool `json:"success"`
	Confirmed bool `json:"confirmed"`
}
