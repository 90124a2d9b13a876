package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User usuario del sistema.
type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"` // bcrypt
	Role         string    `db:"role"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
}

// Actor usuario autenticado de la petición en curso.
// Se pasa explícitamente a cada operación del núcleo.
type Actor struct {
	UserID   string
	Username string
	Role     string
}

// IsAdmin indica si el actor tiene rol administrador.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
