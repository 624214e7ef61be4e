package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

// BankAccountUseCase registro simple de cuentas bancarias de la operación.
type BankAccountUseCase struct {
	repo repository.BankAccountRepository
}

// NewBankAccountUseCase construye el caso de uso.
func NewBankAccountUseCase(repo repository.BankAccountRepository) *BankAccountUseCase {
	return &BankAccountUseCase{repo: repo}
}

// Create registra una cuenta bancaria.
func (uc *BankAccountUseCase) Create(in dto.CreateBankAccountRequest) (*dto.BankAccountResponse, error) {
	now := time.Now()
	account := &entity.BankAccount{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Bank:      in.Bank,
		Number:    in.Number,
		Currency:  in.Currency,
		Balance:   in.Balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	return toBankAccountResponse(account), nil
}

// List lista las cuentas bancarias.
func (uc *BankAccountUseCase) List() ([]dto.BankAccountResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BankAccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toBankAccountResponse(a))
	}
	return items, nil
}

// Delete borra (soft) una cuenta bancaria.
func (uc *BankAccountUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toBankAccountResponse(a *entity.BankAccount) *dto.BankAccountResponse {
	return &dto.BankAccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Bank:      a.Bank,
		Number:    a.Number,
		Currency:  a.Currency,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
