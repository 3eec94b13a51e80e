package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo adaptador append-only del rastro de auditoría.
// La tabla no tiene paths de UPDATE ni DELETE desde la aplicación.
type ActivityLogRepo struct {
	pool *pgxpool.Pool
}

// NewActivityLogRepository construye el adaptador de auditoría.
func NewActivityLogRepository(pool *pgxpool.Pool) *ActivityLogRepo {
	return &ActivityLogRepo{pool: pool}
}

// Create inserta una entrada de auditoría.
func (r *ActivityLogRepo) Create(log *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, user_id, action, category, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		log.ID, log.UserID, log.Action, log.Category, log.IPAddress, log.UserAgent, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// ListRecent lista las entradas más recientes.
func (r *ActivityLogRepo) ListRecent(limit, offset int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, user_id, action, category, ip_address, user_agent, created_at
		FROM activity_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	return collectActivityLogs(rows)
}

// ListByUser lista las entradas de un usuario.
func (r *ActivityLogRepo) ListByUser(userID string, limit, offset int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, user_id, action, category, ip_address, user_agent, created_at
		FROM activity_logs WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activity logs by user: %w", err)
	}
	return collectActivityLogs(rows)
}

func collectActivityLogs(rows pgx.Rows) ([]*entity.ActivityLog, error) {
	defer rows.Close()
	var list []*entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.Category,
			&l.IPAddress, &l.UserAgent, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
