package billing

import (
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

// EstimateUseCase lectura de cotizaciones y generación de su PDF. La creación
// manual queda fuera: los estimates pre-aprobados nacen del commit de entrada.
type EstimateUseCase struct {
	estimateRepo repository.EstimateRepository
	agentRepo    repository.AgentRepository
	pdfGen       EstimatePDFGenerator
}

// NewEstimateUseCase construye el caso de uso.
func NewEstimateUseCase(estimateRepo repository.EstimateRepository, agentRepo repository.AgentRepository, pdfGen EstimatePDFGenerator) *EstimateUseCase {
	return &EstimateUseCase{estimateRepo: estimateRepo, agentRepo: agentRepo, pdfGen: pdfGen}
}

// GetByID devuelve una cotización con sus líneas.
func (uc *EstimateUseCase) GetByID(id string) (*dto.EstimateResponse, error) {
	est, err := uc.estimateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.estimateRepo.GetItemsByEstimateID(id)
	if err != nil {
		return nil, err
	}
	return toEstimateResponse(est, items), nil
}

// List cotizaciones, opcionalmente filtradas por cliente.
func (uc *EstimateUseCase) List(agentID string, page dto.PageRequest) (*dto.EstimateListResponse, error) {
	page.DefaultPage()
	list, err := uc.estimateRepo.List(agentID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EstimateResponse, 0, len(list))
	for _, est := range list {
		items = append(items, *toEstimateResponse(est, nil))
	}
	return &dto.EstimateListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GeneratePDF arma el PDF de la cotización con los datos del cliente.
func (uc *EstimateUseCase) GeneratePDF(id string) ([]byte, error) {
	est, err := uc.estimateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.estimateRepo.GetItemsByEstimateID(id)
	if err != nil {
		return nil, err
	}
	customer, err := uc.agentRepo.GetByID(est.AgentID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.Generate(est, items, customer)
}

func toEstimateResponse(est *entity.Estimate, items []*entity.EstimateItem) *dto.EstimateResponse {
	resp := &dto.EstimateResponse{
		ID:        est.ID,
		AgentID:   est.AgentID,
		Number:    est.Number,
		Status:    est.Status,
		Subtotal:  est.Subtotal,
		Discount:  est.Discount,
		Total:     est.Total,
		Notes:     est.Notes,
		CreatedAt: est.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.EstimateItemResponse{
			ID:            it.ID,
			ModelName:     it.ModelName,
			Capacity:      it.Capacity,
			Grade:         it.Grade,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			CostPrice:     it.CostPrice,
			MarginPercent: it.MarginPercent,
			LineTotal:     it.LineTotal(),
		})
	}
	return resp
}
