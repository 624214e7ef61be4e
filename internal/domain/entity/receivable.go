package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cuenta a cobrar.
const (
	ReceivableStatusPending = "pending"
	ReceivableStatusPaid    = "paid"
)

// Receivable cuenta a cobrar contra un cliente. Las entradas back-to-back crean
// una por cliente, espejando el total del estimate sintetizado.
type Receivable struct {
	ID         string
	AgentID    string // cliente deudor
	EstimateID string // estimate de origen, si aplica
	Amount     decimal.Decimal
	Status     string
	Notes      string // texto libre; referencia la invoice de compra de origen
	DueDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
