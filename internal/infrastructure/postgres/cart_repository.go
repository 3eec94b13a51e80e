package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL (usable con pool o tx).
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador del carrito. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// GetLine obtiene la línea (user, product) si existe.
func (r *CartRepo) GetLine(userID, productID string) (*entity.CartLine, error) {
	query := `
		SELECT user_id, product_id, quantity, created_at, updated_at
		FROM cart WHERE user_id = $1 AND product_id = $2`
	var l entity.CartLine
	err := r.q.QueryRow(context.Background(), query, userID, productID).Scan(
		&l.UserID, &l.ProductID, &l.Quantity, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart line: %w", err)
	}
	return &l, nil
}

// Insert crea una línea nueva.
func (r *CartRepo) Insert(line *entity.CartLine) error {
	query := `
		INSERT INTO cart (user_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		line.UserID, line.ProductID, line.Quantity, line.CreatedAt, line.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cart line: %w", err)
	}
	return nil
}

// SetQuantity fija la cantidad de forma absoluta.
func (r *CartRepo) SetQuantity(userID, productID string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cart SET quantity = $3, updated_at = now() WHERE user_id = $1 AND product_id = $2`,
		userID, productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("set cart quantity: %w", err)
	}
	return nil
}

// DeleteLine elimina la línea (user, product).
func (r *CartRepo) DeleteLine(userID, productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cart WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return fmt.Errorf("delete cart line: %w", err)
	}
	return nil
}

// ListPriced lee el carrito del usuario con el precio vigente del catálogo.
// El precio que retorna este join es el snapshot que se copia a order_items.
func (r *CartRepo) ListPriced(userID string) ([]entity.PricedCartLine, error) {
	query := `
		SELECT c.product_id, p.name, c.quantity, p.price
		FROM cart c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.created_at`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()
	var list []entity.PricedCartLine
	for rows.Next() {
		var l entity.PricedCartLine
		if err := rows.Scan(&l.ProductID, &l.ProductName, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// ClearByUser borra todas las líneas del usuario.
func (r *CartRepo) ClearByUser(userID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cart WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
