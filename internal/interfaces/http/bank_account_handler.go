package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/application/usecase"
	"github.com/tu-usuario/estoque-pro/internal/domain"
)

// BankAccountHandler registro de cuentas bancarias (protegido, sólo admin).
type BankAccountHandler struct {
	uc *usecase.BankAccountUseCase
}

// NewBankAccountHandler construye el handler.
func NewBankAccountHandler(uc *usecase.BankAccountUseCase) *BankAccountHandler {
	return &BankAccountHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar cuenta bancaria
// @Tags         bank-accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBankAccountRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.BankAccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bank-accounts [post]
func (h *BankAccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBankAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Bank == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y bank son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la cuenta ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cuentas bancarias
// @Tags         bank-accounts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BankAccountResponse
// @Router       /api/bank-accounts [get]
func (h *BankAccountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar cuenta bancaria
// @Tags         bank-accounts
// @Security     Bearer
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bank-accounts/{id} [delete]
func (h *BankAccountHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
