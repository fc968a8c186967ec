package entity

import "time"

// Role conjunto cerrado de roles del sistema.
type Role string

// Roles válidos para User.
const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Valid verifica que el rol pertenezca al conjunto cerrado.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User representa un usuario del sistema (staff autenticable).
type User struct {
	ID             string
	Username       string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Role           Role
	IsBlockedUntil *time.Time // reservado: bloqueo temporal de cuenta
	CreatedAt      time.Time
}
