package billing

import (
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

// ReceivableUseCase lectura de cuentas a cobrar.
type ReceivableUseCase struct {
	repo repository.ReceivableRepository
}

// NewReceivableUseCase construye el caso de uso.
func NewReceivableUseCase(repo repository.ReceivableRepository) *ReceivableUseCase {
	return &ReceivableUseCase{repo: repo}
}

// List cuentas a cobrar, filtrables por cliente y estado.
func (uc *ReceivableUseCase) List(agentID, status string, page dto.PageRequest) (*dto.ReceivableListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(agentID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceivableResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.ReceivableResponse{
			ID:         r.ID,
			AgentID:    r.AgentID,
			EstimateID: r.EstimateID,
			Amount:     r.Amount,
			Status:     r.Status,
			Notes:      r.Notes,
			DueDate:    r.DueDate,
			CreatedAt:  r.CreatedAt,
		})
	}
	return &dto.ReceivableListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
