package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes y dashboard.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesRows devuelve una fila por orden dentro del rango, con el conteo de
// líneas y el total calculado al crear la orden (nunca recalculado aquí).
func (r *ReportRepo) SalesRows(ctx context.Context, from, to time.Time) ([]repository.SalesReportRow, error) {
	const query = `
	SELECT
	    o.id,
	    o.created_at,
	    COALESCE(u.name, '')          AS customer_name,
	    o.payment_method,
	    o.status,
	    COUNT(oi.id)                  AS item_count,
	    o.total
	FROM orders o
	LEFT JOIN users       u  ON u.id       = o.user_id
	LEFT JOIN order_items oi ON oi.order_id = o.id
	WHERE o.created_at BETWEEN $1 AND $2
	GROUP BY o.id, u.name
	ORDER BY o.created_at DESC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("sales report query: %w", err)
	}
	defer rows.Close()
	var list []repository.SalesReportRow
	for rows.Next() {
		var row repository.SalesReportRow
		if err := rows.Scan(&row.OrderID, &row.Date, &row.CustomerName,
			&row.PaymentMethod, &row.Status, &row.ItemCount, &row.Total); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// InventoryRows devuelve una fila por producto del catálogo.
func (r *ReportRepo) InventoryRows(ctx context.Context) ([]repository.InventoryReportRow, error) {
	const query = `
	SELECT id, name, category, barcode, price, quantity, visible, promo
	FROM products
	ORDER BY category, name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("inventory report query: %w", err)
	}
	defer rows.Close()
	var list []repository.InventoryReportRow
	for rows.Next() {
		var row repository.InventoryReportRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Category, &row.Barcode,
			&row.Price, &row.Quantity, &row.Visible, &row.Promo); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// DashboardCounts agrega ventas del día y del mes, órdenes por estado,
// productos bajo el umbral de stock y cotizaciones pendientes.
func (r *ReportRepo) DashboardCounts(ctx context.Context, lowStockThreshold int) (*repository.DashboardCounts, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	const query = `
	SELECT
	    COALESCE(SUM(o.total) FILTER (WHERE o.created_at >= $1 AND o.status <> $4), 0) AS today_sales,
	    COALESCE(SUM(o.total) FILTER (WHERE o.created_at >= $2 AND o.status <> $4), 0) AS month_sales,
	    COUNT(o.id) FILTER (WHERE o.status = $4)                                       AS pending_orders,
	    COUNT(o.id) FILTER (WHERE o.status = $5)                                       AS confirmed_orders,
	    (SELECT COUNT(*) FROM products  WHERE quantity <= $3)                          AS low_stock_products,
	    (SELECT COUNT(*) FROM quotations WHERE status = $6 OR status IS NULL)          AS pending_quotations
	FROM orders o`

	var c repository.DashboardCounts
	err := r.pool.QueryRow(ctx, query,
		todayStart, monthStart, lowStockThreshold,
		entity.OrderStatusPending, entity.OrderStatusConfirmed, entity.QuotationStatusPending,
	).Scan(
		&c.TodaySales, &c.MonthSales, &c.PendingOrders, &c.ConfirmedOrders,
		&c.LowStockProducts, &c.PendingQuotations,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts query: %w", err)
	}
	return &c, nil
}
