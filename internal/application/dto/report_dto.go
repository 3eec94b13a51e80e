package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRangeRequest rango de fechas para el reporte de ventas (query params).
type ReportRangeRequest struct {
	From string `query:"from"` // YYYY-MM-DD; vacío = inicio del mes
	To   string `query:"to"`   // YYYY-MM-DD; vacío = hoy
}

// SalesReportRowDTO una orden dentro del rango. TotalFormatted lleva el monto
// en la moneda configurada por el usuario que pide el reporte.
type SalesReportRowDTO struct {
	OrderID        string          `json:"order_id"`
	Date           time.Time       `json:"date"`
	CustomerName   string          `json:"customer_name"`
	PaymentMethod  string          `json:"payment_method"`
	Status         string          `json:"status"`
	ItemCount      int             `json:"item_count"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
}

// SalesReportResponse reporte de ventas en pantalla.
type SalesReportResponse struct {
	From           time.Time           `json:"from"`
	To             time.Time           `json:"to"`
	Rows           []SalesReportRowDTO `json:"rows"`
	GrandTotal     decimal.Decimal     `json:"grand_total"`
	TotalFormatted string              `json:"grand_total_formatted"`
}

// InventoryReportRowDTO un producto del reporte de inventario.
type InventoryReportRowDTO struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Barcode        string          `json:"barcode,omitempty"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"price_formatted"`
	Quantity       int             `json:"quantity"`
	Visible        bool            `json:"visible"`
	Promo          bool            `json:"promo"`
}

// InventoryReportResponse reporte de inventario en pantalla.
type InventoryReportResponse struct {
	Rows []InventoryReportRowDTO `json:"rows"`
}

// DashboardSummaryDTO resumen del dashboard por rol.
type DashboardSummaryDTO struct {
	TodaySales        decimal.Decimal `json:"today_sales"`
	MonthSales        decimal.Decimal `json:"month_sales"`
	PendingOrders     int             `json:"pending_orders"`
	ConfirmedOrders   int             `json:"confirmed_orders"`
	LowStockProducts  int             `json:"low_stock_products"`
	PendingQuotations int             `json:"pending_quotations"`
}
