package repository

import "github.com/tu-usuario/estoque-pro/internal/domain/entity"

// StockLocationRepository puerto de persistencia de ubicaciones de estoque.
type StockLocationRepository interface {
	Create(location *entity.StockLocation) error
	GetByID(id string) (*entity.StockLocation, error)
	List() ([]*entity.StockLocation, error)
	Update(location *entity.StockLocation) error
	Delete(id string) error
}
