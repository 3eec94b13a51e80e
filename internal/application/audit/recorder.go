// Package audit registra el rastro de actividad como efecto secundario
// fire-and-forget: un fallo al escribir el log jamás aborta la operación
// principal; se anota en el canal de errores del logger y se sigue.
package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
	"github.com/jhoicas/pos-retail-api/pkg/logger"
)

// Recorder escribe entradas append-only en activity_logs.
type Recorder struct {
	repo repository.ActivityLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.ActivityLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record persiste una entrada de auditoría. Nunca retorna error.
func (r *Recorder) Record(userID, action, category string, meta dto.RequestMeta) {
	entry := &entity.ActivityLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		Action:    action,
		Category:  category,
		IPAddress: meta.IP,
		UserAgent: meta.UserAgent,
		CreatedAt: time.Now(),
	}
	if err := r.repo.Create(entry); err != nil {
		r.log.Error().Err(err).
			Str("user_id", userID).
			Str("category", category).
			Msg("no se pudo escribir el activity log")
	}
}
