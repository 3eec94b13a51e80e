package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCompleted = "completed"
)

// Order snapshot inmutable y confirmable del carrito de un usuario.
// Total se calcula una sola vez al crear la orden (Σ precio × cantidad)
// y nunca se recalcula después.
type Order struct {
	ID            string
	UserID        string
	Status        string
	PaymentMethod string
	Total         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem línea de la orden: copia de cantidad y precio-al-momento-de-compra.
// Las filas son inmutables una vez insertadas (no existe path de update).
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal // precio del catálogo al crear la orden
}

// Extension devuelve precio unitario × cantidad de la línea.
func (i OrderItem) Extension() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
