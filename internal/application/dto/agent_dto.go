package dto

import "time"

// CreateAgentRequest entrada para crear un agente del directorio.
type CreateAgentRequest struct {
	Name  string   `json:"name" validate:"required,min=1,max=200"`
	TaxID string   `json:"tax_id"`
	Email string   `json:"email" validate:"omitempty,email"`
	Phone string   `json:"phone"`
	Roles []string `json:"roles" validate:"required,min=1"`
}

// UpdateAgentRequest entrada para actualizar un agente.
type UpdateAgentRequest struct {
	Name  *string  `json:"name" validate:"omitempty,min=1,max=200"`
	TaxID *string  `json:"tax_id"`
	Email *string  `json:"email" validate:"omitempty,email"`
	Phone *string  `json:"phone"`
	Roles []string `json:"roles"`
}

// AgentResponse salida de un agente.
type AgentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AgentListResponse lista paginada de agentes.
type AgentListResponse struct {
	Items []AgentResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
