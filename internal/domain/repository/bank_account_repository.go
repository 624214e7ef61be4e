package repository

import "github.com/tu-usuario/estoque-pro/internal/domain/entity"

// BankAccountRepository puerto de persistencia de cuentas bancarias.
type BankAccountRepository interface {
	Create(account *entity.BankAccount) error
	List() ([]*entity.BankAccount, error)
	Delete(id string) error
}
