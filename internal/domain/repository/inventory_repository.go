package repository

import "github.com/tu-usuario/estoque-pro/internal/domain/entity"

// InventoryFilter filtros del listado de inventario.
type InventoryFilter struct {
	Status     string
	LocationID string
	Model      string
	Limit      int
	Offset     int
}

// ModelSummary conteo por modelo para el dashboard de operaciones.
type ModelSummary struct {
	Model     string
	Available int
	Reserved  int
	Sold      int
}

// InventoryRepository puerto de persistencia del ledger de unidades serializadas.
type InventoryRepository interface {
	// BulkInsert inserta el batch completo en una sola operación. Dentro de una
	// transacción: o entran todas las unidades o ninguna.
	BulkInsert(units []*entity.InventoryUnit) error
	List(filter InventoryFilter) ([]*entity.InventoryUnit, error)
	Summary() ([]ModelSummary, error)
	// PurchaseInvoiceNumbers números de invoice que ya tienen unidades en el
	// ledger para un proveedor (para filtrar invoices pendientes de entrada).
	PurchaseInvoiceNumbers(agentID string) ([]string, error)
}
