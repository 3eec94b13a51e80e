package repository

import "github.com/jhoicas/pos-retail-api/internal/domain/entity"

// SettingsRepository puerto de persistencia para Settings (una fila por usuario).
type SettingsRepository interface {
	Get(userID string) (*entity.Settings, error)
	// Upsert inserta o actualiza la fila del usuario (ON CONFLICT).
	Upsert(s *entity.Settings) error
}
