package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesReportRow una fila del reporte de ventas (una orden).
type SalesReportRow struct {
	OrderID       string
	Date          time.Time
	CustomerName  string
	PaymentMethod string
	Status        string
	ItemCount     int
	Total         decimal.Decimal
}

// InventoryReportRow una fila del reporte de inventario (un producto).
type InventoryReportRow struct {
	ProductID string
	Name      string
	Category  string
	Barcode   string
	Price     decimal.Decimal
	Quantity  int
	Visible   bool
	Promo     bool
}

// DashboardCounts agregados para el resumen del dashboard.
type DashboardCounts struct {
	TodaySales        decimal.Decimal
	MonthSales        decimal.Decimal
	PendingOrders     int
	ConfirmedOrders   int
	LowStockProducts  int
	PendingQuotations int
}

// ReportRepository consultas de solo lectura para reportes y dashboard.
type ReportRepository interface {
	SalesRows(ctx context.Context, from, to time.Time) ([]SalesReportRow, error)
	InventoryRows(ctx context.Context) ([]InventoryReportRow, error)
	DashboardCounts(ctx context.Context, lowStockThreshold int) (*DashboardCounts, error)
}
