package repository

import "github.com/tu-usuario/estoque-pro/internal/domain/entity"

// AgentRepository define el puerto de persistencia para el directorio de agentes.
type AgentRepository interface {
	Create(agent *entity.Agent) error
	GetByID(id string) (*entity.Agent, error)
	// List filtra por rol cuando role != "" (contains sobre el array de roles);
	// siempre excluye borrados y ordena por nombre.
	List(role string, limit, offset int) ([]*entity.Agent, error)
	Update(agent *entity.Agent) error
	// Delete es soft delete (deleted_at).
	Delete(id string) error
}
