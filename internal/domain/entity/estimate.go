package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un estimate (cotización comercial).
const (
	EstimateStatusDraft       = "draft"
	EstimateStatusPreApproved = "pre_approved" // generado por entrada back-to-back
	EstimateStatusApproved    = "approved"
	EstimateStatusRejected    = "rejected"
)

// Estimate cabecera de una cotización para un cliente.
type Estimate struct {
	ID        string
	AgentID   string // cliente (agents con rol cliente)
	Number    string
	Status    string
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
	Notes     string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// EstimateItem línea de cotización. La relación entre costo, margen y precio es
// unit_price = cost_price * (1 + margin_percent/100).
type EstimateItem struct {
	ID            string
	EstimateID    string
	ModelName     string
	Capacity      string
	Grade         string
	Quantity      int
	UnitPrice     decimal.Decimal
	CostPrice     decimal.Decimal
	MarginPercent decimal.Decimal
}

// LineTotal cantidad por precio unitario.
func (i *EstimateItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
