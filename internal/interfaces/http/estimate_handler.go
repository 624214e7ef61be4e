package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/estoque-pro/internal/application/billing"
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/domain"
)

// EstimateHandler lectura de cotizaciones y su PDF (protegido).
type EstimateHandler struct {
	uc *billing.EstimateUseCase
}

// NewEstimateHandler construye el handler.
func NewEstimateHandler(uc *billing.EstimateUseCase) *EstimateHandler {
	return &EstimateHandler{uc: uc}
}

// List godoc
// @Summary      Listar cotizaciones
// @Tags         estimates
// @Security     Bearer
// @Produce      json
// @Param        agent_id  query  string  false  "Filtrar por cliente"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200       {object}  dto.EstimateListResponse
// @Router       /api/estimates [get]
func (h *EstimateHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Query("agent_id"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cotización con sus líneas
// @Tags         estimates
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.EstimateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estimates/{id} [get]
func (h *EstimateHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetPDF godoc
// @Summary      PDF de la cotización
// @Tags         estimates
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estimates/{id}/pdf [get]
func (h *EstimateHandler) GetPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.GeneratePDF(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `inline; filename="cotizacion.pdf"`)
	return c.Send(pdf)
}
