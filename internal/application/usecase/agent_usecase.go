package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

// AgentUseCase casos de uso CRUD para el directorio de agentes.
type AgentUseCase struct {
	repo repository.AgentRepository
}

// NewAgentUseCase construye el caso de uso.
func NewAgentUseCase(repo repository.AgentRepository) *AgentUseCase {
	return &AgentUseCase{repo: repo}
}

// Create crea un agente. Al menos un rol es obligatorio.
func (uc *AgentUseCase) Create(in dto.CreateAgentRequest) (*dto.AgentResponse, error) {
	if len(in.Roles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	agent := &entity.Agent{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Roles:     in.Roles,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(agent); err != nil {
		return nil, err
	}
	return toAgentResponse(agent), nil
}

// GetByID obtiene un agente por ID.
func (uc *AgentUseCase) GetByID(id string) (*dto.AgentResponse, error) {
	agent, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.ErrNotFound
	}
	return toAgentResponse(agent), nil
}

// List lista agentes, filtrables por rol.
func (uc *AgentUseCase) List(role string, page dto.PageRequest) (*dto.AgentListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(role, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AgentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAgentResponse(a))
	}
	return &dto.AgentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza un agente.
func (uc *AgentUseCase) Update(id string, in dto.UpdateAgentRequest) (*dto.AgentResponse, error) {
	agent, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		agent.Name = *in.Name
	}
	if in.TaxID != nil {
		agent.TaxID = *in.TaxID
	}
	if in.Email != nil {
		agent.Email = *in.Email
	}
	if in.Phone != nil {
		agent.Phone = *in.Phone
	}
	if len(in.Roles) > 0 {
		agent.Roles = in.Roles
	}
	agent.UpdatedAt = time.Now()
	if err := uc.repo.Update(agent); err != nil {
		return nil, err
	}
	return toAgentResponse(agent), nil
}

// Delete borra (soft) un agente.
func (uc *AgentUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAgentResponse(a *entity.Agent) *dto.AgentResponse {
	return &dto.AgentResponse{
		ID:        a.ID,
		Name:      a.Name,
		TaxID:     a.TaxID,
		Email:     a.Email,
		Phone:     a.Phone,
		Roles:     a.Roles,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
