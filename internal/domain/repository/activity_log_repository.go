package repository

import "github.com/jhoicas/pos-retail-api/internal/domain/entity"

// ActivityLogRepository puerto append-only del rastro de auditoría.
// No hay Update ni Delete a propósito.
type ActivityLogRepository interface {
	Create(log *entity.ActivityLog) error
	ListRecent(limit, offset int) ([]*entity.ActivityLog, error)
	ListByUser(userID string, limit, offset int) ([]*entity.ActivityLog, error)
}
