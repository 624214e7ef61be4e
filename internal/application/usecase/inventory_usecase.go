package usecase

import (
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

// InventoryUseCase lectura del ledger de unidades. Las altas pasan siempre por
// el wizard de entrada; acá sólo hay listado y resumen.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// List unidades filtradas por estado, ubicación y modelo.
func (uc *InventoryUseCase) List(status, locationID, model string, page dto.PageRequest) (*dto.InventoryListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(repository.InventoryFilter{
		Status:     status,
		LocationID: locationID,
		Model:      model,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryUnitResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.InventoryUnitResponse{
			ID:              u.ID,
			Model:           u.Model,
			Capacity:        u.Capacity,
			Color:           u.Color,
			Grade:           u.Grade,
			Price:           u.Price,
			IMEI:            u.IMEI,
			SerialNumber:    u.SerialNumber,
			PurchaseInvoice: u.PurchaseInvoice,
			LocationID:      u.LocationID,
			Status:          u.Status,
			ReservedForID:   u.ReservedForID,
			EstimateID:      u.EstimateID,
			EntryDate:       u.EntryDate,
		})
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Summary conteos por modelo y estado para el dashboard.
func (uc *InventoryUseCase) Summary() ([]dto.ModelSummaryResponse, error) {
	rows, err := uc.repo.Summary()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ModelSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ModelSummaryResponse{
			Model:     r.Model,
			Available: r.Available,
			Reserved:  r.Reserved,
			Sold:      r.Sold,
		})
	}
	return out, nil
}
