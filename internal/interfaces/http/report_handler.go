package http

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/application/report"
	"github.com/jhoicas/pos-retail-api/internal/domain"
)

// ReportHandler reportes de ventas e inventario (JSON y CSV) y dashboard.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales godoc
// @Summary      Reporte de ventas por rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "YYYY-MM-DD (default: inicio del mes)"
// @Param        to    query  string  false  "YYYY-MM-DD (default: hoy)"
// @Success      200   {object}  dto.SalesReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	out, err := h.salesReport(c)
	if err != nil {
		return h.rangeError(c, err)
	}
	return c.JSON(out)
}

// SalesCSV godoc
// @Summary      Descargar el reporte de ventas como CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        from  query  string  false  "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD"
// @Success      200   {file}  binary
// @Router       /api/reports/sales.csv [get]
func (h *ReportHandler) SalesCSV(c *fiber.Ctx) error {
	out, err := h.salesReport(c)
	if err != nil {
		return h.rangeError(c, err)
	}
	var buf bytes.Buffer
	if err := report.WriteSalesCSV(&buf, out); err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales-report.csv"`)
	return c.Send(buf.Bytes())
}

// Inventory godoc
// @Summary      Reporte de inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryReportResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.InventoryReport(c.Context(), GetUserID(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// InventoryCSV godoc
// @Summary      Descargar el reporte de inventario como CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {file}  binary
// @Router       /api/reports/inventory.csv [get]
func (h *ReportHandler) InventoryCSV(c *fiber.Ctx) error {
	out, err := h.uc.InventoryReport(c.Context(), GetUserID(c))
	if err != nil {
		return internalError(c, err)
	}
	var buf bytes.Buffer
	if err := report.WriteInventoryCSV(&buf, out); err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory-report.csv"`)
	return c.Send(buf.Bytes())
}

// Dashboard godoc
// @Summary      Resumen del dashboard (ventas, órdenes, stock bajo, cotizaciones)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

func (h *ReportHandler) salesReport(c *fiber.Ctx) (*dto.SalesReportResponse, error) {
	in := dto.ReportRangeRequest{From: c.Query("from"), To: c.Query("to")}
	return h.uc.SalesReport(c.Context(), GetUserID(c), in)
}

func (h *ReportHandler) rangeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido (formato YYYY-MM-DD, from ≤ to)"})
	}
	return internalError(c, err)
}
