package report_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/application/report"
	"github.com/jhoicas/pos-retail-api/internal/domain"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	sales     []repository.SalesReportRow
	inventory []repository.InventoryReportRow
	counts    repository.DashboardCounts
	gotFrom   time.Time
	gotTo     time.Time
}

func (r *fakeReportRepo) SalesRows(ctx context.Context, from, to time.Time) ([]repository.SalesReportRow, error) {
	r.gotFrom, r.gotTo = from, to
	return r.sales, nil
}

func (r *fakeReportRepo) InventoryRows(ctx context.Context) ([]repository.InventoryReportRow, error) {
	return r.inventory, nil
}

func (r *fakeReportRepo) DashboardCounts(ctx context.Context, lowStockThreshold int) (*repository.DashboardCounts, error) {
	c := r.counts
	return &c, nil
}

type fakeSettingsRepo struct{ settings map[string]*entity.Settings }

func (r *fakeSettingsRepo) Get(userID string) (*entity.Settings, error) {
	return r.settings[userID], nil
}
func (r *fakeSettingsRepo) Upsert(s *entity.Settings) error {
	r.settings[s.UserID] = s
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// SalesReport
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesReport_TotalesYFormato(t *testing.T) {
	repo := &fakeReportRepo{
		sales: []repository.SalesReportRow{
			{OrderID: "o1", CustomerName: "Ana", PaymentMethod: "cash", Status: "confirmed", ItemCount: 2, Total: decimal.NewFromInt(2500)},
			{OrderID: "o2", CustomerName: "Luis", PaymentMethod: "card", Status: "pending", ItemCount: 1, Total: decimal.NewFromInt(500)},
		},
	}
	settings := &fakeSettingsRepo{settings: map[string]*entity.Settings{
		"u1": {UserID: "u1", Currency: "USD"},
	}}
	uc := report.NewUseCase(repo, settings)

	resp, err := uc.SalesReport(context.Background(), "u1", dto.ReportRangeRequest{From: "2026-08-01", To: "2026-08-28"})
	require.NoError(t, err)

	assert.True(t, resp.GrandTotal.Equal(decimal.NewFromInt(3000)))
	require.Len(t, resp.Rows, 2)
	assert.Contains(t, resp.Rows[0].TotalFormatted, "USD", "el monto se formatea en la moneda del usuario")
	assert.NotEmpty(t, resp.TotalFormatted)

	// El rango llegó inclusivo al repositorio: to cubre el día completo.
	assert.Equal(t, 1, repo.gotFrom.Day())
	assert.Equal(t, 28, repo.gotTo.Day())
	assert.Equal(t, 23, repo.gotTo.Hour())
}

func TestSalesReport_MonedaPorDefectoSinSettings(t *testing.T) {
	repo := &fakeReportRepo{sales: []repository.SalesReportRow{
		{OrderID: "o1", Total: decimal.NewFromInt(1000)},
	}}
	uc := report.NewUseCase(repo, &fakeSettingsRepo{settings: map[string]*entity.Settings{}})

	resp, err := uc.SalesReport(context.Background(), "sin-settings", dto.ReportRangeRequest{})
	require.NoError(t, err)
	assert.Contains(t, resp.Rows[0].TotalFormatted, "COP", "sin settings aplica la moneda por defecto")
}

func TestSalesReport_RangoInvalido(t *testing.T) {
	uc := report.NewUseCase(&fakeReportRepo{}, &fakeSettingsRepo{settings: map[string]*entity.Settings{}})

	_, err := uc.SalesReport(context.Background(), "u1", dto.ReportRangeRequest{From: "28-08-2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha mal formada")

	_, err = uc.SalesReport(context.Background(), "u1", dto.ReportRangeRequest{From: "2026-08-28", To: "2026-08-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "to anterior a from")
}

// ──────────────────────────────────────────────────────────────────────────────
// CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestWriteSalesCSV_EncabezadoYFilas(t *testing.T) {
	resp := &dto.SalesReportResponse{
		Rows: []dto.SalesReportRowDTO{
			{
				OrderID:       "o1",
				Date:          time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC),
				CustomerName:  "Ana",
				PaymentMethod: "cash",
				Status:        "confirmed",
				ItemCount:     2,
				Total:         decimal.NewFromInt(2500),
			},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, report.WriteSalesCSV(&buf, resp))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "order_id,date,customer,payment_method,status,items,total", lines[0])
	assert.Equal(t, "o1,2026-08-28 10:30:00,Ana,cash,confirmed,2,2500.00", lines[1])
}

func TestWriteInventoryCSV_EncabezadoYFilas(t *testing.T) {
	resp := &dto.InventoryReportResponse{
		Rows: []dto.InventoryReportRowDTO{
			{
				ProductID: "p1",
				Name:      "Café 500g",
				Category:  "bebidas",
				Barcode:   "7701234567890",
				Price:     decimal.NewFromInt(1000),
				Quantity:  12,
				Visible:   true,
				Promo:     false,
			},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, report.WriteInventoryCSV(&buf, resp))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "product_id,name,category,barcode,price,quantity,visible,promo", lines[0])
	assert.Equal(t, "p1,Café 500g,bebidas,7701234567890,1000.00,12,true,false", lines[1])
}

// ──────────────────────────────────────────────────────────────────────────────
// FormatMoney
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatMoney_CodigoInvalidoCaeAPlano(t *testing.T) {
	got := report.FormatMoney(decimal.NewFromInt(1500), "XXX-no-iso")
	assert.Equal(t, "1500.00", got)
}

func TestFormatMoney_IncluyeLaMoneda(t *testing.T) {
	got := report.FormatMoney(decimal.NewFromInt(1500), "COP")
	assert.Contains(t, got, "COP")
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_ProyectaLosConteos(t *testing.T) {
	repo := &fakeReportRepo{counts: repository.DashboardCounts{
		TodaySales:        decimal.NewFromInt(5000),
		MonthSales:        decimal.NewFromInt(120000),
		PendingOrders:     3,
		ConfirmedOrders:   17,
		LowStockProducts:  2,
		PendingQuotations: 1,
	}}
	uc := report.NewUseCase(repo, &fakeSettingsRepo{settings: map[string]*entity.Settings{}})

	resp, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.PendingOrders)
	assert.Equal(t, 17, resp.ConfirmedOrders)
	assert.True(t, resp.MonthSales.Equal(decimal.NewFromInt(120000)))
}
