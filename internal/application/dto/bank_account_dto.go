package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest entrada para registrar una cuenta bancaria.
type CreateBankAccountRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Bank     string          `json:"bank" validate:"required"`
	Number   string          `json:"number"`
	Currency string          `json:"currency" validate:"required,oneof=USD BRL"`
	Balance  decimal.Decimal `json:"balance"`
}

// UpdateBankAccountRequest entrada para actualizar una cuenta bancaria.
type UpdateBankAccountRequest struct {
	Name    *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Bank    *string          `json:"bank"`
	Number  *string          `json:"number"`
	Balance *decimal.Decimal `json:"balance"`
}

// BankAccountResponse cuenta bancaria.
type BankAccountResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Bank      string          `json:"bank"`
	Number    string          `json:"number,omitempty"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
