package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo ledger de unidades serializadas sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

var inventoryColumns = []string{
	"id", "model", "capacity", "color", "grade", "price", "imei", "serial_number",
	"purchase_invoice", "agent_id", "location_id", "status", "reserved_for_id",
	"estimate_id", "entry_date", "created_by", "created_at",
}

// BulkInsert inserta el batch completo con COPY. Dentro de la transacción del
// commit de entrada: o entran todas las unidades o ninguna.
func (r *InventoryRepo) BulkInsert(units []*entity.InventoryUnit) error {
	rows := make([][]any, 0, len(units))
	for _, u := range units {
		rows = append(rows, []any{
			u.ID, u.Model, nullIfEmpty(u.Capacity), nullIfEmpty(u.Color), nullIfEmpty(u.Grade),
			u.Price, nullIfEmpty(u.IMEI), nullIfEmpty(u.SerialNumber),
			u.PurchaseInvoice, u.AgentID, nullIfEmpty(u.LocationID), u.Status,
			nullIfEmpty(u.ReservedForID), nullIfEmpty(u.EstimateID),
			u.EntryDate, nullIfEmpty(u.CreatedBy), u.CreatedAt,
		})
	}
	n, err := r.q.CopyFrom(context.Background(),
		pgx.Identifier{"inventory"}, inventoryColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("bulk insert inventory: %w", err)
	}
	if n != int64(len(units)) {
		return fmt.Errorf("bulk insert inventory: %d de %d filas", n, len(units))
	}
	return nil
}

// List unidades con filtros opcionales por estado, ubicación y modelo.
func (r *InventoryRepo) List(filter repository.InventoryFilter) ([]*entity.InventoryUnit, error) {
	query := `
		SELECT id, model, COALESCE(capacity, ''), COALESCE(color, ''), COALESCE(grade, ''),
		       price, COALESCE(imei, ''), COALESCE(serial_number, ''), purchase_invoice,
		       agent_id, COALESCE(location_id::text, ''), status,
		       COALESCE(reserved_for_id::text, ''), COALESCE(estimate_id::text, ''),
		       entry_date, COALESCE(created_by::text, ''), created_at
		FROM inventory
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR status = $1)
		  AND ($2 = '' OR location_id::text = $2)
		  AND ($3 = '' OR model ILIKE '%' || $3 || '%')
		ORDER BY entry_date DESC, model LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query,
		filter.Status, filter.LocationID, filter.Model, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryUnit
	for rows.Next() {
		var u entity.InventoryUnit
		if err := rows.Scan(&u.ID, &u.Model, &u.Capacity, &u.Color, &u.Grade, &u.Price,
			&u.IMEI, &u.SerialNumber, &u.PurchaseInvoice, &u.AgentID, &u.LocationID,
			&u.Status, &u.ReservedForID, &u.EstimateID, &u.EntryDate, &u.CreatedBy, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Summary conteos por modelo y estado.
func (r *InventoryRepo) Summary() ([]repository.ModelSummary, error) {
	query := `
		SELECT model,
		       COUNT(*) FILTER (WHERE status = 'Available'),
		       COUNT(*) FILTER (WHERE status = 'Reserved'),
		       COUNT(*) FILTER (WHERE status = 'Sold')
		FROM inventory WHERE deleted_at IS NULL
		GROUP BY model ORDER BY model`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("inventory summary: %w", err)
	}
	defer rows.Close()
	var out []repository.ModelSummary
	for rows.Next() {
		var s repository.ModelSummary
		if err := rows.Scan(&s.Model, &s.Available, &s.Reserved, &s.Sold); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// PurchaseInvoiceNumbers números de invoice con unidades ya registradas para
// un proveedor. Alimenta el filtro de invoices pendientes de entrada.
func (r *InventoryRepo) PurchaseInvoiceNumbers(agentID string) ([]string, error) {
	query := `
		SELECT DISTINCT purchase_invoice FROM inventory
		WHERE agent_id = $1 AND deleted_at IS NULL`
	rows, err := r.q.Query(context.Background(), query, agentID)
	if err != nil {
		return nil, fmt.Errorf("purchase invoice numbers: %w", err)
	}
	defer rows.Close()
	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan invoice number: %w", err)
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}
