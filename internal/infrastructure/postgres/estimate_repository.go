package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

var _ repository.EstimateRepository = (*EstimateRepo)(nil)

// EstimateRepo persistencia de cotizaciones sobre PostgreSQL.
type EstimateRepo struct {
	q Querier
}

// NewEstimateRepository construye el adaptador de estimates. Pasar pool o tx (Querier).
func NewEstimateRepository(q Querier) *EstimateRepo {
	return &EstimateRepo{q: q}
}

// Create persiste la cabecera de un estimate.
func (r *EstimateRepo) Create(est *entity.Estimate) error {
	query := `
		INSERT INTO estimates (id, agent_id, number, status, subtotal, discount, total,
		                       notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		est.ID, est.AgentID, est.Number, est.Status, est.Subtotal, est.Discount, est.Total,
		nullIfEmpty(est.Notes), nullIfEmpty(est.CreatedBy), est.CreatedAt, est.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert estimate: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de estimate.
func (r *EstimateRepo) CreateItem(item *entity.EstimateItem) error {
	query := `
		INSERT INTO estimate_items (id, estimate_id, model_name, capacity, grade,
		                            quantity, unit_price, cost_price, margin_percent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.EstimateID, item.ModelName, nullIfEmpty(item.Capacity), nullIfEmpty(item.Grade),
		item.Quantity, item.UnitPrice, item.CostPrice, item.MarginPercent,
	)
	if err != nil {
		return fmt.Errorf("insert estimate item: %w", err)
	}
	return nil
}

// UpdateTotals fija subtotal y total recalculados desde las líneas.
func (r *EstimateRepo) UpdateTotals(id string, subtotal, total decimal.Decimal) error {
	query := `UPDATE estimates SET subtotal = $2, total = $3, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, subtotal, total)
	if err != nil {
		return fmt.Errorf("update estimate totals: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un estimate por ID.
func (r *EstimateRepo) GetByID(id string) (*entity.Estimate, error) {
	query := `
		SELECT id, agent_id, number, status, subtotal, discount, total,
		       COALESCE(notes, ''), COALESCE(created_by::text, ''), created_at, updated_at
		FROM estimates WHERE id = $1 AND deleted_at IS NULL`
	var est entity.Estimate
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&est.ID, &est.AgentID, &est.Number, &est.Status, &est.Subtotal, &est.Discount,
		&est.Total, &est.Notes, &est.CreatedBy, &est.CreatedAt, &est.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estimate: %w", err)
	}
	return &est, nil
}

// GetItemsByEstimateID líneas de un estimate en orden de inserción.
func (r *EstimateRepo) GetItemsByEstimateID(estimateID string) ([]*entity.EstimateItem, error) {
	query := `
		SELECT id, estimate_id, model_name, COALESCE(capacity, ''), COALESCE(grade, ''),
		       quantity, unit_price, cost_price, margin_percent
		FROM estimate_items WHERE estimate_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, estimateID)
	if err != nil {
		return nil, fmt.Errorf("list estimate items: %w", err)
	}
	defer rows.Close()
	var items []*entity.EstimateItem
	for rows.Next() {
		var it entity.EstimateItem
		if err := rows.Scan(&it.ID, &it.EstimateID, &it.ModelName, &it.Capacity, &it.Grade,
			&it.Quantity, &it.UnitPrice, &it.CostPrice, &it.MarginPercent); err != nil {
			return nil, fmt.Errorf("scan estimate item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// List estimates más recientes primero, filtrables por cliente.
func (r *EstimateRepo) List(agentID string, limit, offset int) ([]*entity.Estimate, error) {
	query := `
		SELECT id, agent_id, number, status, subtotal, discount, total,
		       COALESCE(notes, ''), COALESCE(created_by::text, ''), created_at, updated_at
		FROM estimates
		WHERE deleted_at IS NULL AND ($1 = '' OR agent_id::text = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, agentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list estimates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Estimate
	for rows.Next() {
		var est entity.Estimate
		if err := rows.Scan(&est.ID, &est.AgentID, &est.Number, &est.Status, &est.Subtotal,
			&est.Discount, &est.Total, &est.Notes, &est.CreatedBy, &est.CreatedAt, &est.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan estimate: %w", err)
		}
		list = append(list, &est)
	}
	return list, rows.Err()
}
