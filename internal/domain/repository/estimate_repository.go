package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// EstimateRepository puerto de persistencia de cotizaciones.
type EstimateRepository interface {
	Create(estimate *entity.Estimate) error
	CreateItem(item *entity.EstimateItem) error
	// UpdateTotals fija subtotal/total recalculados desde las líneas tras
	// insertar los items.
	UpdateTotals(id string, subtotal, total decimal.Decimal) error
	GetByID(id string) (*entity.Estimate, error)
	GetItemsByEstimateID(estimateID string) ([]*entity.EstimateItem, error)
	List(agentID string, limit, offset int) ([]*entity.Estimate, error)
}
