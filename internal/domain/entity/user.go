package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "Admin"
	RoleGerente = "Gerente"
	RoleCliente = "Cliente"
)

// User representa una cuenta de la plataforma. El correo es la clave del registro
// (único, normalizado a minúsculas antes de persistir).
type User struct {
	Email        string
	Name         string
	Role         string // Admin, Gerente, Cliente
	PasswordHash string // bcrypt hash, nunca cruza la frontera de respuesta
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
