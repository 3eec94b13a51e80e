package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/domain"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

// Existencias por debajo de este umbral cuentan como "low stock" en el dashboard.
const lowStockThreshold = 5

// UseCase reportes de ventas e inventario y resumen del dashboard.
// Los montos se formatean en la moneda configurada por el usuario que
// pide el reporte (settings.currency).
type UseCase struct {
	reportRepo   repository.ReportRepository
	settingsRepo repository.SettingsRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(reportRepo repository.ReportRepository, settingsRepo repository.SettingsRepository) *UseCase {
	return &UseCase{reportRepo: reportRepo, settingsRepo: settingsRepo}
}

// SalesReport reporte de órdenes dentro del rango [from, to]. Rango vacío:
// del primer día del mes hasta hoy.
func (uc *UseCase) SalesReport(ctx context.Context, userID string, in dto.ReportRangeRequest) (*dto.SalesReportResponse, error) {
	from, to, err := resolveRange(in)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.SalesRows(ctx, from, to)
	if err != nil {
		return nil, err
	}
	curr := uc.userCurrency(userID)

	out := make([]dto.SalesReportRowDTO, 0, len(rows))
	grand := decimal.Zero
	for _, r := range rows {
		grand = grand.Add(r.Total)
		out = append(out, dto.SalesReportRowDTO{
			OrderID:        r.OrderID,
			Date:           r.Date,
			CustomerName:   r.CustomerName,
			PaymentMethod:  r.PaymentMethod,
			Status:         r.Status,
			ItemCount:      r.ItemCount,
			Total:          r.Total,
			TotalFormatted: FormatMoney(r.Total, curr),
		})
	}
	return &dto.SalesReportResponse{
		From:           from,
		To:             to,
		Rows:           out,
		GrandTotal:     grand,
		TotalFormatted: FormatMoney(grand, curr),
	}, nil
}

// InventoryReport estado actual del catálogo completo.
func (uc *UseCase) InventoryReport(ctx context.Context, userID string) (*dto.InventoryReportResponse, error) {
	rows, err := uc.reportRepo.InventoryRows(ctx)
	if err != nil {
		return nil, err
	}
	curr := uc.userCurrency(userID)

	out := make([]dto.InventoryReportRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InventoryReportRowDTO{
			ProductID:      r.ProductID,
			Name:           r.Name,
			Category:       r.Category,
			Barcode:        r.Barcode,
			Price:          r.Price,
			PriceFormatted: FormatMoney(r.Price, curr),
			Quantity:       r.Quantity,
			Visible:        r.Visible,
			Promo:          r.Promo,
		})
	}
	return &dto.InventoryReportResponse{Rows: out}, nil
}

// Dashboard agregados para la pantalla de inicio de cada rol.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	counts, err := uc.reportRepo.DashboardCounts(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummaryDTO{
		TodaySales:        counts.TodaySales,
		MonthSales:        counts.MonthSales,
		PendingOrders:     counts.PendingOrders,
		ConfirmedOrders:   counts.ConfirmedOrders,
		LowStockProducts:  counts.LowStockProducts,
		PendingQuotations: counts.PendingQuotations,
	}, nil
}

// userCurrency moneda configurada del usuario, con default si no hay settings.
func (uc *UseCase) userCurrency(userID string) string {
	s, err := uc.settingsRepo.Get(userID)
	if err != nil || s == nil {
		return entity.DefaultSettings(userID).Currency
	}
	return s.Currency
}

// resolveRange interpreta from/to (YYYY-MM-DD). Vacíos: inicio del mes y hoy.
// to se extiende al final del día para que el rango sea inclusivo.
func resolveRange(in dto.ReportRangeRequest) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if in.From != "" {
		parsed, err := time.ParseInLocation("2006-01-02", in.From, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		from = parsed
	}
	if in.To != "" {
		parsed, err := time.ParseInLocation("2006-01-02", in.To, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return from, to, nil
}
