package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount cuenta bancaria de la operación (registro simple, sin conciliación contable).
type BankAccount struct {
	ID        string
	Name      string
	Bank      string
	Number    string
	Currency  string // "USD", "BRL"
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
