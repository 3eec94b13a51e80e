package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-retail-api/internal/application/usecase"
)

// ActivityHandler consulta del rastro de auditoría (solo admin).
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// ListRecent godoc
// @Summary      Actividad global más reciente
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ActivityLogListResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) ListRecent(c *fiber.Ctx) error {
	out, err := h.uc.ListRecent(pageFromQuery(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// ListByUser godoc
// @Summary      Actividad de un usuario puntual
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        userId  path   string  true  "ID del usuario"
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ActivityLogListResponse
// @Router       /api/activity/user/{userId} [get]
func (h *ActivityHandler) ListByUser(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.Params("userId"), pageFromQuery(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
