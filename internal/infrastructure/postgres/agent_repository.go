package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

var _ repository.AgentRepository = (*AgentRepo)(nil)

// AgentRepo implementación de AgentRepository sobre PostgreSQL (usable con pool o tx).
type AgentRepo struct {
	q Querier
}

// NewAgentRepository construye el adaptador del directorio de agentes. Pasar pool o tx (Querier).
func NewAgentRepository(q Querier) *AgentRepo {
	return &AgentRepo{q: q}
}

// Create persiste un agente. Roles va como text[].
func (r *AgentRepo) Create(agent *entity.Agent) error {
	query := `
		INSERT INTO agents (id, name, tax_id, email, phone, roles, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		agent.ID, agent.Name, nullIfEmpty(agent.TaxID), nullIfEmpty(agent.Email),
		nullIfEmpty(agent.Phone), agent.Roles, agent.CreatedAt, agent.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert agent: %w", err)
	}
	return nil
}

// GetByID obtiene un agente por ID. Excluye borrados.
func (r *AgentRepo) GetByID(id string) (*entity.Agent, error) {
	query := `
		SELECT id, name, COALESCE(tax_id, ''), COALESCE(email, ''), COALESCE(phone, ''),
		       roles, created_at, updated_at
		FROM agents WHERE id = $1 AND deleted_at IS NULL`
	var a entity.Agent
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.TaxID, &a.Email, &a.Phone, &a.Roles, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agent: %w", err)
	}
	return &a, nil
}

// List lista agentes por nombre, filtrando por rol cuando role != "".
func (r *AgentRepo) List(role string, limit, offset int) ([]*entity.Agent, error) {
	query := `
		SELECT id, name, COALESCE(tax_id, ''), COALESCE(email, ''), COALESCE(phone, ''),
		       roles, created_at, updated_at
		FROM agents
		WHERE deleted_at IS NULL AND ($1 = '' OR $1 = ANY(roles))
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, role, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Agent
	for rows.Next() {
		var a entity.Agent
		if err := rows.Scan(&a.ID, &a.Name, &a.TaxID, &a.Email, &a.Phone, &a.Roles, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza un agente existente.
func (r *AgentRepo) Update(agent *entity.Agent) error {
	query := `
		UPDATE agents SET name = $2, tax_id = $3, email = $4, phone = $5, roles = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		agent.ID, agent.Name, nullIfEmpty(agent.TaxID), nullIfEmpty(agent.Email),
		nullIfEmpty(agent.Phone), agent.Roles, agent.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update agent: %w", err)
	}
	return nil
}

// Delete marca el agente como borrado (soft delete).
func (r *AgentRepo) Delete(id string) error {
	query := `UPDATE agents SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete agent: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
