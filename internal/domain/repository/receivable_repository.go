package repository

import "github.com/tu-usuario/estoque-pro/internal/domain/entity"

// ReceivableRepository puerto de persistencia de cuentas a cobrar.
type ReceivableRepository interface {
	Create(receivable *entity.Receivable) error
	List(agentID, status string, limit, offset int) ([]*entity.Receivable, error)
}
