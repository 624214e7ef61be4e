package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/estoque-pro/internal/application/billing"
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/application/usecase"
	"github.com/tu-usuario/estoque-pro/internal/domain"
)

// AgentHandler maneja el directorio de agentes (protegido).
type AgentHandler struct {
	uc        *usecase.AgentUseCase
	invoiceUC *billing.InvoiceUseCase
}

// NewAgentHandler construye el handler.
func NewAgentHandler(uc *usecase.AgentUseCase, invoiceUC *billing.InvoiceUseCase) *AgentHandler {
	return &AgentHandler{uc: uc, invoiceUC: invoiceUC}
}

// Create godoc
// @Summary      Crear agente
// @Tags         agents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAgentRequest  true  "Datos del agente"
// @Success      201   {object}  dto.AgentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/agents [post]
func (h *AgentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAgentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "al menos un rol es requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el agente ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener agente por ID
// @Tags         agents
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del agente"
// @Success      200  {object}  dto.AgentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agents/{id} [get]
func (h *AgentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "agente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar agentes
// @Tags         agents
// @Security     Bearer
// @Produce      json
// @Param        role    query  string  false  "Filtrar por rol (fornecedor_estoque, cliente, fornecedor)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.AgentListResponse
// @Router       /api/agents [get]
func (h *AgentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Query("role"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar agente
// @Tags         agents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del agente"
// @Param        body  body  dto.UpdateAgentRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AgentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/agents/{id} [put]
func (h *AgentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAgentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "agente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar agente
// @Tags         agents
// @Security     Bearer
// @Param        id   path  string  true  "ID del agente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agents/{id} [delete]
func (h *AgentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "agente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListPendingInvoices godoc
// @Summary      Invoices pendientes de entrada de un proveedor
// @Description  Invoices del proveedor sin unidades registradas en el ledger de inventario.
// @Tags         agents
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {array}  dto.PendingInvoiceResponse
// @Router       /api/agents/{id}/pending-invoices [get]
func (h *AgentHandler) ListPendingInvoices(c *fiber.Ctx) error {
	out, err := h.invoiceUC.ListPendingByAgent(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
