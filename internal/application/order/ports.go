package order

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

// TxRunner frontera de atomicidad para crear órdenes: el insert de la orden,
// sus líneas y la limpieza del carrito comparten una transacción. El caso de
// uso no conoce pgx; recibe repos ya atados a la tx.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		cartRepo repository.CartRepository,
	) error) error
}

// ReceiptLine línea del comprobante con el nombre del producto ya resuelto.
type ReceiptLine struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Extension devuelve precio unitario × cantidad de la línea.
func (l ReceiptLine) Extension() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ReceiptGenerator produce el comprobante PDF de una orden.
type ReceiptGenerator interface {
	Receipt(order *entity.Order, lines []ReceiptLine, customerName string) ([]byte, error)
}
