package entity

import "time"

// Roles conocidos de un agente en el directorio. Un agente puede acumular varios
// (ej. un cliente que también provee estoque).
const (
	RoleStockVendor = "fornecedor_estoque" // provee unidades serializadas
	RoleCustomer    = "cliente"            // destino de estimates / cuentas a cobrar
	RoleSupplier    = "fornecedor"         // proveedor genérico (gastos)
)

// Agent representa una entrada del directorio de vendedores/clientes.
type Agent struct {
	ID        string
	Name      string
	TaxID     string // documento fiscal (CNPJ/EIN según el país del agente)
	Email     string
	Phone     string
	Roles     []string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // soft delete: los listados excluyen agentes borrados
}

// HasRole indica si el agente tiene el rol dado.
func (a *Agent) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}
