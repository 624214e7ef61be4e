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

var _ repository.StockLocationRepository = (*StockLocationRepo)(nil)

// StockLocationRepo persistencia de ubicaciones de estoque sobre PostgreSQL.
type StockLocationRepo struct {
	q Querier
}

// NewStockLocationRepository construye el adaptador de ubicaciones. Pasar pool o tx (Querier).
func NewStockLocationRepository(q Querier) *StockLocationRepo {
	return &StockLocationRepo{q: q}
}

// Create persiste una ubicación.
func (r *StockLocationRepo) Create(loc *entity.StockLocation) error {
	query := `
		INSERT INTO stock_locations (id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		loc.ID, loc.Name, nullIfEmpty(loc.Address), loc.CreatedAt, loc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID. Excluye borradas.
func (r *StockLocationRepo) GetByID(id string) (*entity.StockLocation, error) {
	query := `
		SELECT id, name, COALESCE(address, ''), created_at, updated_at
		FROM stock_locations WHERE id = $1 AND deleted_at IS NULL`
	var loc entity.StockLocation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&loc.ID, &loc.Name, &loc.Address, &loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &loc, nil
}

// List todas las ubicaciones activas, por nombre.
func (r *StockLocationRepo) List() ([]*entity.StockLocation, error) {
	query := `
		SELECT id, name, COALESCE(address, ''), created_at, updated_at
		FROM stock_locations WHERE deleted_at IS NULL ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLocation
	for rows.Next() {
		var loc entity.StockLocation
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.CreatedAt, &loc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &loc)
	}
	return list, rows.Err()
}

// Update actualiza una ubicación existente.
func (r *StockLocationRepo) Update(loc *entity.StockLocation) error {
	query := `
		UPDATE stock_locations SET name = $2, address = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		loc.ID, loc.Name, nullIfEmpty(loc.Address), loc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// Delete marca la ubicación como borrada (soft delete).
func (r *StockLocationRepo) Delete(id string) error {
	query := `UPDATE stock_locations SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
