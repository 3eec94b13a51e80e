package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
	"github.com/jhoicas/pos-retail-api/pkg/logger"
)

// NotificationUseCase campana del dashboard: avisos por usuario.
type NotificationUseCase struct {
	repo repository.NotificationRepository
	log  *logger.Logger
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository, log *logger.Logger) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, log: log}
}

// Notify crea un aviso para el usuario. Es best-effort: los avisos son
// derivados de otras operaciones y su fallo no debe propagarse.
func (uc *NotificationUseCase) Notify(userID, title, body string) {
	n := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(n); err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Msg("no se pudo crear la notificación")
	}
}

// ListByUser lista los avisos del usuario, más recientes primero.
func (uc *NotificationUseCase) ListByUser(userID string, page dto.PageRequest) (*dto.NotificationListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Body:      n.Body,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return &dto.NotificationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// MarkRead marca un aviso como leído. El userID acota el update a avisos
// propios: nadie marca avisos ajenos.
func (uc *NotificationUseCase) MarkRead(id, userID string) error {
	return uc.repo.MarkRead(id, userID)
}

// MarkAllRead marca todos los avisos del usuario como leídos.
func (uc *NotificationUseCase) MarkAllRead(userID string) error {
	return uc.repo.MarkAllRead(userID)
}
