package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/application/quotation"
	"github.com/jhoicas/pos-retail-api/internal/domain"
)

// QuotationHandler cotizaciones del shop manager a proveedores.
type QuotationHandler struct {
	uc *quotation.UseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *quotation.UseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cotización (send_email la envía y aprueba en una tx)
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuotationRequest  true  "Cotización"
// @Success      201   {object}  dto.QuotationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotations [post]
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in, requestMeta(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items con nombre y cantidad positiva son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
		}
		// Incluye el fallo SMTP: la transacción ya se revirtió.
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Send godoc
// @Summary      Enviar una cotización pending al proveedor
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuotationResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/send [post]
func (h *QuotationHandler) Send(c *fiber.Ctx) error {
	out, err := h.uc.Send(c.Context(), GetUserID(c), c.Params("id"), requestMeta(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		if errors.Is(err, domain.ErrAlreadyApproved) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_APPROVED", Message: "la cotización ya fue aprobada; no se reenvía"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cotización
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuotationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id} [get]
func (h *QuotationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cotizaciones (shop manager)
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.QuotationListResponse
// @Router       /api/quotations [get]
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// ListBySupplier godoc
// @Summary      Listar cotizaciones dirigidas a un proveedor
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        supplierId  path   string  true  "ID del proveedor"
// @Param        limit       query  int     false "Límite"  default(20)
// @Param        offset      query  int     false "Offset"  default(0)
// @Success      200         {object}  dto.QuotationListResponse
// @Router       /api/quotations/supplier/{supplierId} [get]
func (h *QuotationHandler) ListBySupplier(c *fiber.Ctx) error {
	out, err := h.uc.ListBySupplier(c.Params("supplierId"), pageFromQuery(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cotización (cualquier estado)
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.ActionResponse
// @Router       /api/quotations/{id} [delete]
func (h *QuotationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id"), requestMeta(c)); err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.ActionResponse{Success: true, Message: "cotización eliminada"})
}
