package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo lectura de invoices de compra sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador de invoices. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// GetByID obtiene una invoice por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, agent_id, invoice_number, amount, status, issue_date, due_date,
		       COALESCE(notes, ''), created_at, updated_at
		FROM invoices WHERE id = $1 AND deleted_at IS NULL`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.AgentID, &inv.InvoiceNumber, &inv.Amount, &inv.Status,
		&inv.IssueDate, &inv.DueDate, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// ListByAgent invoices de un proveedor, más recientes primero.
func (r *InvoiceRepo) ListByAgent(agentID string) ([]*entity.Invoice, error) {
	query := `
		SELECT id, agent_id, invoice_number, amount, status, issue_date, due_date,
		       COALESCE(notes, ''), created_at, updated_at
		FROM invoices WHERE agent_id = $1 AND deleted_at IS NULL
		ORDER BY issue_date DESC`
	rows, err := r.q.Query(context.Background(), query, agentID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.AgentID, &inv.InvoiceNumber, &inv.Amount, &inv.Status,
			&inv.IssueDate, &inv.DueDate, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// GetItemsByInvoiceID líneas de una invoice, en el orden de carga.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, model_name, COALESCE(capacity, ''), COALESCE(grade, ''),
		       COALESCE(lot_id, ''), unit_price, quantity, total_amount
		FROM invoice_items WHERE invoice_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var items []entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.ModelName, &it.Capacity, &it.Grade,
			&it.LotID, &it.UnitPrice, &it.Quantity, &it.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
