package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/estoque-pro/internal/application/billing"
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
)

// ReceivableHandler lectura de cuentas a cobrar (protegido).
type ReceivableHandler struct {
	uc *billing.ReceivableUseCase
}

// NewReceivableHandler construye el handler.
func NewReceivableHandler(uc *billing.ReceivableUseCase) *ReceivableHandler {
	return &ReceivableHandler{uc: uc}
}

// List godoc
// @Summary      Listar cuentas a cobrar
// @Tags         receivables
// @Security     Bearer
// @Produce      json
// @Param        agent_id  query  string  false  "Filtrar por cliente"
// @Param        status    query  string  false  "pending | paid"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200       {object}  dto.ReceivableListResponse
// @Router       /api/receivables [get]
func (h *ReceivableHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Query("agent_id"), c.Query("status"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
