package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Motor de entrada de estoque.
	ErrEmptySheet        = errors.New("la planilla no contiene filas de datos")
	ErrUnreadableFile    = errors.New("no se pudo leer el archivo")
	ErrInvalidTransition = errors.New("transición de paso inválida")
	ErrLotUnmapped       = errors.New("lote sin ubicación de estoque asignada")
	ErrMissingCustomer   = errors.New("lote back-to-back sin cliente de destino")
	ErrSessionNotFound   = errors.New("sesión de entrada de estoque no encontrada")
	ErrInvoiceCommitted  = errors.New("la invoice ya tiene unidades registradas en inventario")
)
