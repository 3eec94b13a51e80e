package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine una línea (user, product, qty) de intención de compra sin confirmar.
// Cantidad ≤ 0 elimina la línea; el precio NO se guarda aquí: se toma del
// catálogo en el momento de crear la orden (snapshot en OrderItem).
type CartLine struct {
	UserID    string
	ProductID string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PricedCartLine línea de carrito junto al precio vigente del producto,
// tal como la devuelve el join contra el catálogo al leer el carrito.
type PricedCartLine struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Extension devuelve precio unitario × cantidad.
func (l PricedCartLine) Extension() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
