package entity

import "time"

// StockLocation ubicación física de estoque (depósito, vitrina, consignación).
type StockLocation struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
