package dto

import "time"

// UpdateSettingsRequest upsert de preferencias del usuario.
type UpdateSettingsRequest struct {
	Theme    string `json:"theme"`
	Timezone string `json:"timezone"`
	Currency string `json:"currency"`
}

// UpdateThemeRequest acción rápida update_theme (solo el tema).
type UpdateThemeRequest struct {
	Theme string `json:"theme"`
}

// SettingsResponse preferencias vigentes (con defaults si nunca guardó).
type SettingsResponse struct {
	UserID    string    `json:"user_id"`
	Theme     string    `json:"theme"`
	Timezone  string    `json:"timezone"`
	Currency  string    `json:"currency"`
	UpdatedAt time.Time `json:"updated_at"`
}
