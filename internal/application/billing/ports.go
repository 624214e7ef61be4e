package billing

import "github.com/tu-usuario/estoque-pro/internal/domain/entity"

// EstimatePDFGenerator genera el PDF de una cotización para envío al cliente.
type EstimatePDFGenerator interface {
	Generate(estimate *entity.Estimate, items []*entity.EstimateItem, customer *entity.Agent) ([]byte, error)
}
