package usecase

import (
	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

// ActivityUseCase lectura del rastro de auditoría (solo consulta: las
// escrituras pasan por audit.Recorder y no existe edición ni borrado).
type ActivityUseCase struct {
	repo repository.ActivityLogRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityLogRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// ListRecent actividad global más reciente (vista del admin).
func (uc *ActivityUseCase) ListRecent(page dto.PageRequest) (*dto.ActivityLogListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListRecent(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toActivityList(list, page), nil
}

// ListByUser actividad de un usuario puntual.
func (uc *ActivityUseCase) ListByUser(userID string, page dto.PageRequest) (*dto.ActivityLogListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toActivityList(list, page), nil
}

func toActivityList(list []*entity.ActivityLog, page dto.PageRequest) *dto.ActivityLogListResponse {
	items := make([]dto.ActivityLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.ActivityLogResponse{
			ID:        l.ID,
			UserID:    l.UserID,
			Action:    l.Action,
			Category:  l.Category,
			IPAddress: l.IPAddress,
			UserAgent: l.UserAgent,
			CreatedAt: l.CreatedAt,
		})
	}
	return &dto.ActivityLogListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
