package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User usuario del sistema (operadores del back-office).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
