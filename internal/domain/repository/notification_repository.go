package repository

import "github.com/jhoicas/pos-retail-api/internal/domain/entity"

// NotificationRepository puerto de persistencia para Notification (DIP).
type NotificationRepository interface {
	Create(n *entity.Notification) error
	ListByUser(userID string, limit, offset int) ([]*entity.Notification, error)
	MarkRead(id, userID string) error
	MarkAllRead(userID string) error
}
