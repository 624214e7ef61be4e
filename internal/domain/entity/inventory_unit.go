package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una unidad física en el ledger de inventario.
const (
	UnitStatusAvailable = "Available"
	UnitStatusReserved  = "Reserved"
	UnitStatusSold      = "Sold"
)

// InventoryUnit es una unidad serializada (teléfono/tablet) en el inventario físico.
// Se crea en bloque al confirmar una entrada por planilla; IMEI o Serial pueden
// faltar individualmente pero nunca ambos.
type InventoryUnit struct {
	ID              string
	Model           string
	Capacity        string
	Color           string
	Grade           string
	Price           decimal.Decimal // costo unitario resuelto en la conciliación
	IMEI            string
	SerialNumber    string
	PurchaseInvoice string // número de la invoice de compra (procedencia)
	AgentID         string // proveedor de origen
	LocationID      string // ubicación física; vacío para filas sin lote (ver wizard)
	Status          string
	ReservedForID   string // cliente de destino cuando Status = Reserved
	EstimateID      string // estimate back-to-back vinculado, si existe
	EntryDate       time.Time
	CreatedBy       string
	CreatedAt       time.Time
	DeletedAt       *time.Time
}
