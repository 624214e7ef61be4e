package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryUnitResponse unidad serializada del ledger.
type InventoryUnitResponse struct {
	ID              string          `json:"id"`
	Model           string          `json:"model"`
	Capacity        string          `json:"capacity"`
	Color           string          `json:"color,omitempty"`
	Grade           string          `json:"grade,omitempty"`
	Price           decimal.Decimal `json:"price"`
	IMEI            string          `json:"imei,omitempty"`
	SerialNumber    string          `json:"serial_number,omitempty"`
	PurchaseInvoice string          `json:"purchase_invoice"`
	LocationID      string          `json:"location_id,omitempty"`
	Status          string          `json:"status"`
	ReservedForID   string          `json:"reserved_for_id,omitempty"`
	EstimateID      string          `json:"estimate_id,omitempty"`
	EntryDate       time.Time       `json:"entry_date"`
}

// InventoryListResponse lista paginada de unidades.
type InventoryListResponse struct {
	Items []InventoryUnitResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// ModelSummaryResponse conteos por modelo para el dashboard.
type ModelSummaryResponse struct {
	Model     string `json:"model"`
	Available int    `json:"available"`
	Reserved  int    `json:"reserved"`
	Sold      int    `json:"sold"`
}

// CreateLocationRequest entrada para crear una ubicación de estoque.
type CreateLocationRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
}

// UpdateLocationRequest entrada para actualizar una ubicación.
type UpdateLocationRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
}

// LocationResponse ubicación de estoque.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
