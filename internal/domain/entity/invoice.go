package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una invoice (cuenta a pagar).
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusPartial = "partial"
)

// Invoice representa una cuenta a pagar registrada contra un proveedor.
// Desde el motor de entrada de estoque es sólo lectura: la entrada por planilla
// se concilia contra sus líneas y la referencia queda en inventory.purchase_invoice.
type Invoice struct {
	ID            string
	AgentID       string // proveedor (agents con rol fornecedor_estoque)
	InvoiceNumber string
	Amount        decimal.Decimal
	Status        string
	IssueDate     time.Time
	DueDate       *time.Time
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// InvoiceItem línea de una invoice de compra: modelo de catálogo, capacidad,
// grade, lote opcional, precio unitario y cantidad esperada.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	ModelName   string
	Capacity    string
	Grade       string
	LotID       string // opcional; presente en compras por subasta (T-Mobile y similares)
	UnitPrice   decimal.Decimal
	Quantity    int
	TotalAmount decimal.Decimal
}
