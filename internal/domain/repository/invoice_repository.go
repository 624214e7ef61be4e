package repository

import "github.com/tu-usuario/estoque-pro/internal/domain/entity"

// InvoiceRepository puerto de lectura de invoices de compra (cuentas a pagar).
// El motor de entrada de estoque nunca las modifica.
type InvoiceRepository interface {
	GetByID(id string) (*entity.Invoice, error)
	ListByAgent(agentID string) ([]*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]entity.InvoiceItem, error)
}
