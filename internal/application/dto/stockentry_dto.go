package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StartStockEntryRequest abre una sesión del wizard: proveedor, invoice pendiente
// y fecha de entrada.
type StartStockEntryRequest struct {
	AgentID   string `json:"agent_id" validate:"required,uuid"`
	InvoiceID string `json:"invoice_id" validate:"required,uuid"`
	EntryDate string `json:"entry_date" validate:"required"` // YYYY-MM-DD
}

// MapLotRequest decisión del operador para un lote.
type MapLotRequest struct {
	LotID      string `json:"lot_id" validate:"required"`
	LocationID string `json:"location_id" validate:"required,uuid"`
	BackToBack bool   `json:"back_to_back"`
	CustomerID string `json:"customer_id" validate:"omitempty,uuid"`
}

// ParsedRowResponse fila de la planilla tras parseo y conciliación.
type ParsedRowResponse struct {
	Model        string          `json:"model"`
	Capacity     string          `json:"capacity"`
	Color        string          `json:"color"`
	Grade        string          `json:"grade"`
	IMEI         string          `json:"imei"`
	SerialNumber string          `json:"serial_number"`
	LotID        string          `json:"lot_id"`
	Valid        bool            `json:"valid"`
	Price        decimal.Decimal `json:"price"`
	PriceSource  string          `json:"price_source"` // "lot" | "model" | "sheet"
}

// DivergenceResponse línea de invoice cuya cantidad no coincide con la planilla.
type DivergenceResponse struct {
	ModelName string `json:"model_name"`
	Capacity  string `json:"capacity"`
	LotID     string `json:"lot_id"`
	Expected  int    `json:"expected"`
	Actual    int    `json:"actual"`
	Divergent bool   `json:"divergent"`
}

// LotMappingResponse estado del mapeo de un lote.
type LotMappingResponse struct {
	LotID      string `json:"lot_id"`
	LocationID string `json:"location_id"`
	BackToBack bool   `json:"back_to_back"`
	CustomerID string `json:"customer_id"`
}

// StockEntrySessionResponse estado completo de la sesión del wizard.
type StockEntrySessionResponse struct {
	ID             string               `json:"id"`
	State          string               `json:"state"`
	AgentID        string               `json:"agent_id"`
	InvoiceID      string               `json:"invoice_id"`
	InvoiceNumber  string               `json:"invoice_number"`
	EntryDate      string               `json:"entry_date"`
	FileName       string               `json:"file_name,omitempty"`
	Rows           []ParsedRowResponse  `json:"rows,omitempty"`
	Lots           []LotMappingResponse `json:"lots,omitempty"`
	Divergences    []DivergenceResponse `json:"divergences,omitempty"`
	ParsedTotal    decimal.Decimal      `json:"parsed_total"`
	InvoiceTotal   decimal.Decimal      `json:"invoice_total"`
	TotalDiff      decimal.Decimal      `json:"total_diff"`
	RowsWithoutLot int                  `json:"rows_without_lot"`
	InvalidRows    int                  `json:"invalid_rows"`
	CommitReady    bool                 `json:"commit_ready"`
	CreatedAt      time.Time            `json:"created_at"`
}

// CommitResultResponse resumen del commit de una entrada.
type CommitResultResponse struct {
	UnitsCreated       int      `json:"units_created"`
	SkippedRows        int      `json:"skipped_rows"`
	EstimatesCreated   int      `json:"estimates_created"`
	EstimateIDs        []string `json:"estimate_ids,omitempty"`
	ReceivablesCreated int      `json:"receivables_created"`
}

// PendingInvoiceResponse invoice de compra sin unidades en el ledger.
type PendingInvoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	Amount        decimal.Decimal `json:"amount"`
	IssueDate     time.Time       `json:"issue_date"`
}
