package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

var _ repository.ReceivableRepository = (*ReceivableRepo)(nil)

// ReceivableRepo persistencia de cuentas a cobrar sobre PostgreSQL.
type ReceivableRepo struct {
	q Querier
}

// NewReceivableRepository construye el adaptador de cuentas a cobrar. Pasar pool o tx (Querier).
func NewReceivableRepository(q Querier) *ReceivableRepo {
	return &ReceivableRepo{q: q}
}

// Create persiste una cuenta a cobrar.
func (r *ReceivableRepo) Create(recv *entity.Receivable) error {
	query := `
		INSERT INTO receivables (id, agent_id, estimate_id, amount, status, notes,
		                         due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		recv.ID, recv.AgentID, nullIfEmpty(recv.EstimateID), recv.Amount, recv.Status,
		nullIfEmpty(recv.Notes), recv.DueDate, recv.CreatedAt, recv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receivable: %w", err)
	}
	return nil
}

// List cuentas a cobrar, filtrables por cliente y estado.
func (r *ReceivableRepo) List(agentID, status string, limit, offset int) ([]*entity.Receivable, error) {
	query := `
		SELECT id, agent_id, COALESCE(estimate_id::text, ''), amount, status,
		       COALESCE(notes, ''), due_date, created_at, updated_at
		FROM receivables
		WHERE ($1 = '' OR agent_id::text = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, agentID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receivables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receivable
	for rows.Next() {
		var recv entity.Receivable
		if err := rows.Scan(&recv.ID, &recv.AgentID, &recv.EstimateID, &recv.Amount, &recv.Status,
			&recv.Notes, &recv.DueDate, &recv.CreatedAt, &recv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan receivable: %w", err)
		}
		list = append(list, &recv)
	}
	return list, rows.Err()
}
