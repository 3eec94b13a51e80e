package dto

import "time"

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// LoginResponse token de sesión más la ruta de aterrizaje según el rol.
// RememberToken solo viene cuando se pidió remember_me.
type LoginResponse struct {
	Token         string       `json:"token"`
	RememberToken string       `json:"remember_token,omitempty"`
	LandingRoute  string       `json:"landing_route"`
	User          UserResponse `json:"user"`
}

// RegisterRequest alta de usuario (autoservicio: siempre rol customer).
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// RefreshRequest intercambio de remember_token por una sesión nueva.
type RefreshRequest struct {
	RememberToken string `json:"remember_token"`
}

// ForgotPasswordRequest solicitud de enlace de reset.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest consumo del token de reset.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// UserResponse proyección pública de un usuario (sin hash ni tokens).
type UserResponse struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	Active       bool       `json:"active"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
