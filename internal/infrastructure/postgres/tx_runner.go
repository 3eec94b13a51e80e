package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/pos-retail-api/internal/application/order"
	"github.com/jhoicas/pos-retail-api/internal/application/quotation"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

// Ensure TxRunner implements order.TxRunner and quotation.TxRunner.
var _ order.TxRunner = (*TxRunner)(nil)
var _ quotation.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOrder inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Es la frontera de atomicidad de createOrder: orden,
// líneas y limpieza del carrito comparten la misma tx.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	cartRepo := NewCartRepository(tx)

	if err := fn(orderRepo, cartRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunQuotation inicia una transacción con el repo de cotizaciones. El envío
// de correo ocurre dentro del callback: si falla, el Rollback deja la fila
// ausente o el status sin cambiar.
func (r *TxRunner) RunQuotation(ctx context.Context, fn func(
	quotationRepo repository.QuotationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	quotationRepo := NewQuotationRepository(tx)

	if err := fn(quotationRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
