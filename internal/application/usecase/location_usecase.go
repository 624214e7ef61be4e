package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones de estoque.
type LocationUseCase struct {
	repo repository.StockLocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.StockLocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea una ubicación.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	now := time.Now()
	loc := &entity.StockLocation{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// List lista todas las ubicaciones activas.
func (uc *LocationUseCase) List() ([]dto.LocationResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return items, nil
}

// Update actualiza una ubicación.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	loc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		loc.Name = *in.Name
	}
	if in.Address != nil {
		loc.Address = *in.Address
	}
	loc.UpdatedAt = time.Now()
	if err := uc.repo.Update(loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// Delete borra (soft) una ubicación.
func (uc *LocationUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toLocationResponse(l *entity.StockLocation) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Address:   l.Address,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
