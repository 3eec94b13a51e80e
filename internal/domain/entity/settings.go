package entity

import "time"

// Settings preferencias por usuario (una fila por usuario, upsert).
type Settings struct {
	UserID    string
	Theme     string // light | dark
	Timezone  string // nombre IANA, ej. America/Bogota
	Currency  string // código ISO 4217, ej. COP, USD
	UpdatedAt time.Time
}

// DefaultSettings valores aplicados cuando el usuario aún no guarda preferencias.
func DefaultSettings(userID string) *Settings {
	return &Settings{
		UserID:   userID,
		Theme:    "light",
		Timezone: "America/Bogota",
		Currency: "COP",
	}
}
