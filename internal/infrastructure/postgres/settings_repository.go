package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
type SettingsRepo struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository construye el adaptador de preferencias.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

// Get obtiene las preferencias del usuario; nil si nunca guardó.
func (r *SettingsRepo) Get(userID string) (*entity.Settings, error) {
	query := `
		SELECT user_id, theme, timezone, currency, updated_at
		FROM settings WHERE user_id = $1`
	var s entity.Settings
	err := r.pool.QueryRow(context.Background(), query, userID).Scan(
		&s.UserID, &s.Theme, &s.Timezone, &s.Currency, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la fila del usuario en una sola sentencia.
func (r *SettingsRepo) Upsert(s *entity.Settings) error {
	query := `
		INSERT INTO settings (user_id, theme, timezone, currency, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id) DO UPDATE
		SET theme = EXCLUDED.theme, timezone = EXCLUDED.timezone,
			currency = EXCLUDED.currency, updated_at = now()`
	_, err := r.pool.Exec(context.Background(), query,
		s.UserID, s.Theme, s.Timezone, s.Currency,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
