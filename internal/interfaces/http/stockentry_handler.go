package http

import (
	"errors"
	"io"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	appstock "github.com/tu-usuario/estoque-pro/internal/application/stockentry"
	"github.com/tu-usuario/estoque-pro/internal/domain"
)

// StockEntryHandler maneja el wizard de entrada de estoque (protegido).
type StockEntryHandler struct {
	uc *appstock.UseCase
}

// NewStockEntryHandler construye el handler.
func NewStockEntryHandler(uc *appstock.UseCase) *StockEntryHandler {
	return &StockEntryHandler{uc: uc}
}

// Start godoc
// @Summary      Abrir sesión de entrada de estoque
// @Tags         stock-entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartStockEntryRequest  true  "agent_id, invoice_id, entry_date (YYYY-MM-DD)"
// @Success      201   {object}  dto.StockEntrySessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-entries [post]
func (h *StockEntryHandler) Start(c *fiber.Ctx) error {
	var in dto.StartStockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.AgentID == "" || in.InvoiceID == "" || in.EntryDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "agent_id, invoice_id y entry_date son requeridos"})
	}
	out, err := h.uc.StartSession(in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Estado de la sesión
// @Tags         stock-entries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.StockEntrySessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-entries/{id} [get]
func (h *StockEntryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// UploadSheet godoc
// @Summary      Subir la planilla del proveedor
// @Description  Multipart con campo "file" (csv, xls o xlsx). Re-subir reemplaza la planilla anterior.
// @Tags         stock-entries
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "ID de la sesión"
// @Param        file  formData  file    true  "Planilla"
// @Success      200   {object}  dto.StockEntrySessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock-entries/{id}/sheet [post]
func (h *StockEntryHandler) UploadSheet(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart \"file\" requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "no se pudo leer el archivo"})
	}
	out, err := h.uc.UploadSheet(c.Params("id"), fileHeader.Filename, data)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// MapLot godoc
// @Summary      Mapear un lote
// @Description  Asigna ubicación y reserva back-to-back opcional a un lote descubierto en la planilla.
// @Tags         stock-entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id     path  string  true  "ID de la sesión"
// @Param        lotId  path  string  true  "ID del lote (columna Lot ID de la planilla)"
// @Param        body   body  dto.MapLotRequest  true  "location_id, back_to_back, customer_id"
// @Success      200   {object}  dto.StockEntrySessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-entries/{id}/lots/{lotId} [put]
func (h *StockEntryHandler) MapLot(c *fiber.Ctx) error {
	var in dto.MapLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Los lot IDs de planilla pueden traer espacios u otros caracteres escapados.
	lotID, err := url.PathUnescape(c.Params("lotId"))
	if err != nil || lotID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lot id inválido"})
	}
	in.LotID = lotID
	out, err := h.uc.MapLot(c.Params("id"), in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Review godoc
// @Summary      Pasar a revisión
// @Tags         stock-entries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.StockEntrySessionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock-entries/{id}/review [post]
func (h *StockEntryHandler) Review(c *fiber.Ctx) error {
	out, err := h.uc.Review(c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Confirmar la entrada
// @Description  Transacción única: estimates back-to-back + cuentas a cobrar + batch de inventario.
// @Tags         stock-entries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.CommitResultResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock-entries/{id}/commit [post]
func (h *StockEntryHandler) Commit(c *fiber.Ctx) error {
	out, err := h.uc.Commit(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Abandon godoc
// @Summary      Descartar la sesión
// @Tags         stock-entries
// @Security     Bearer
// @Param        id   path  string  true  "ID de la sesión"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-entries/{id} [delete]
func (h *StockEntryHandler) Abandon(c *fiber.Ctx) error {
	if err := h.uc.Abandon(c.Params("id")); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// mapError traduce los errores del wizard a HTTP. El parser envuelve los
// sentinels, por eso errors.Is en vez de comparación directa.
func (h *StockEntryHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SESSION_NOT_FOUND", Message: "la sesión no existe o expiró"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvoiceCommitted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVOICE_COMMITTED", Message: "la invoice ya tiene una entrada registrada"})
	case errors.Is(err, domain.ErrEmptySheet):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_SHEET", Message: "la planilla no tiene filas de datos"})
	case errors.Is(err, domain.ErrUnreadableFile):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "archivo ilegible o de tipo no soportado"})
	case errors.Is(err, domain.ErrLotUnmapped):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOT_UNMAPPED", Message: "hay lotes sin ubicación asignada"})
	case errors.Is(err, domain.ErrMissingCustomer):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CUSTOMER", Message: "back-to-back requiere cliente de destino"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "operación no válida en el estado actual de la sesión"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
