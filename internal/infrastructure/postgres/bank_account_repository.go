package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

var _ repository.BankAccountRepository = (*BankAccountRepo)(nil)

// BankAccountRepo persistencia de cuentas bancarias sobre PostgreSQL.
type BankAccountRepo struct {
	q Querier
}

// NewBankAccountRepository construye el adaptador de cuentas bancarias. Pasar pool o tx (Querier).
func NewBankAccountRepository(q Querier) *BankAccountRepo {
	return &BankAccountRepo{q: q}
}

// Create persiste una cuenta bancaria.
func (r *BankAccountRepo) Create(account *entity.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (id, name, bank, number, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Name, account.Bank, nullIfEmpty(account.Number),
		account.Currency, account.Balance, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bank account: %w", err)
	}
	return nil
}

// List cuentas bancarias activas, por nombre.
func (r *BankAccountRepo) List() ([]*entity.BankAccount, error) {
	query := `
		SELECT id, name, bank, COALESCE(number, ''), currency, balance, created_at, updated_at
		FROM bank_accounts WHERE deleted_at IS NULL ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.BankAccount
	for rows.Next() {
		var a entity.BankAccount
		if err := rows.Scan(&a.ID, &a.Name, &a.Bank, &a.Number, &a.Currency, &a.Balance,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete marca la cuenta como borrada (soft delete).
func (r *BankAccountRepo) Delete(id string) error {
	query := `UPDATE bank_accounts SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete bank account: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
