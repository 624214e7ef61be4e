package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceResponse salida de una invoice de compra.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	AgentID       string                `json:"agent_id"`
	InvoiceNumber string                `json:"invoice_number"`
	Amount        decimal.Decimal       `json:"amount"`
	Status        string                `json:"status"`
	IssueDate     time.Time             `json:"issue_date"`
	DueDate       *time.Time            `json:"due_date,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	Items         []InvoiceItemResponse `json:"items,omitempty"`
}

// InvoiceItemResponse línea de una invoice de compra.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	ModelName   string          `json:"model_name"`
	Capacity    string          `json:"capacity"`
	Grade       string          `json:"grade"`
	LotID       string          `json:"lot_id,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// EstimateResponse salida de una cotización.
type EstimateResponse struct {
	ID        string                 `json:"id"`
	AgentID   string                 `json:"agent_id"`
	Number    string                 `json:"number"`
	Status    string                 `json:"status"`
	Subtotal  decimal.Decimal        `json:"subtotal"`
	Discount  decimal.Decimal        `json:"discount"`
	Total     decimal.Decimal        `json:"total"`
	Notes     string                 `json:"notes,omitempty"`
	Items     []EstimateItemResponse `json:"items,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// EstimateItemResponse línea de cotización.
type EstimateItemResponse struct {
	ID            string          `json:"id"`
	ModelName     string          `json:"model_name"`
	Capacity      string          `json:"capacity"`
	Grade         string          `json:"grade"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
	LineTotal     decimal.Decimal `json:"line_total"`
}

// EstimateListResponse lista paginada de cotizaciones.
type EstimateListResponse struct {
	Items []EstimateResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ReceivableResponse cuenta a cobrar.
type ReceivableResponse struct {
	ID         string          `json:"id"`
	AgentID    string          `json:"agent_id"`
	EstimateID string          `json:"estimate_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Notes      string          `json:"notes,omitempty"`
	DueDate    *time.Time      `json:"due_date,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ReceivableListResponse lista paginada de cuentas a cobrar.
type ReceivableListResponse struct {
	Items []ReceivableResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
