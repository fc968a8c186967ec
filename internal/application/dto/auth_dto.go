package dto

// RegisterRequest entrada para registro de usuario (siempre rol employee).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse proyección de un usuario (sin hash).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TokenResponse token + usuario; se devuelve en login y también tras registro.
type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
