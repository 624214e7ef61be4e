package billing

import (
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

// InvoiceUseCase lectura de invoices de compra. El filtro de pendientes es el
// que alimenta el primer paso del wizard de entrada.
type InvoiceUseCase struct {
	invoiceRepo   repository.InvoiceRepository
	inventoryRepo repository.InventoryRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, inventoryRepo repository.InventoryRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, inventoryRepo: inventoryRepo}
}

// GetByID devuelve una invoice con sus líneas.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(invoice)
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			ModelName:   it.ModelName,
			Capacity:    it.Capacity,
			Grade:       it.Grade,
			LotID:       it.LotID,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			TotalAmount: it.TotalAmount,
		})
	}
	return resp, nil
}

// ListByAgent devuelve las invoices del proveedor, más recientes primero.
func (uc *InvoiceUseCase) ListByAgent(agentID string) ([]dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.ListByAgent(agentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, *toInvoiceResponse(inv))
	}
	return out, nil
}

// ListPendingByAgent invoices del proveedor que todavía no tienen unidades en
// el ledger de inventario: las candidatas a una entrada por planilla.
func (uc *InvoiceUseCase) ListPendingByAgent(agentID string) ([]dto.PendingInvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.ListByAgent(agentID)
	if err != nil {
		return nil, err
	}
	committed, err := uc.inventoryRepo.PurchaseInvoiceNumbers(agentID)
	if err != nil {
		return nil, err
	}
	inLedger := make(map[string]bool, len(committed))
	for _, n := range committed {
		inLedger[n] = true
	}
	pending := make([]dto.PendingInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		if inLedger[inv.InvoiceNumber] {
			continue
		}
		pending = append(pending, dto.PendingInvoiceResponse{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			Amount:        inv.Amount,
			IssueDate:     inv.IssueDate,
		})
	}
	return pending, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		AgentID:       inv.AgentID,
		InvoiceNumber: inv.InvoiceNumber,
		Amount:        inv.Amount,
		Status:        inv.Status,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Notes:         inv.Notes,
	}
}
