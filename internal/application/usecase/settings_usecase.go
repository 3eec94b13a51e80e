package usecase

import (
	"time"

	"golang.org/x/text/currency"

	"github.com/jhoicas/pos-retail-api/internal/application/audit"
	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/domain"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

// SettingsUseCase preferencias por usuario: tema, zona horaria y moneda.
type SettingsUseCase struct {
	repo  repository.SettingsRepository
	audit *audit.Recorder
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository, rec *audit.Recorder) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, audit: rec}
}

// Get devuelve las preferencias del usuario, con defaults si nunca guardó.
func (uc *SettingsUseCase) Get(userID string) (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get(userID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = entity.DefaultSettings(userID)
	}
	return toSettingsResponse(s), nil
}

// Update upsert completo de las preferencias. La moneda se valida contra
// ISO 4217 y la zona horaria contra la base IANA del sistema.
func (uc *SettingsUseCase) Update(userID string, in dto.UpdateSettingsRequest, meta dto.RequestMeta) (*dto.SettingsResponse, error) {
	if in.Theme != "light" && in.Theme != "dark" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := currency.ParseISO(in.Currency); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.LoadLocation(in.Timezone); err != nil {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Settings{
		UserID:    userID,
		Theme:     in.Theme,
		Timezone:  in.Timezone,
		Currency:  in.Currency,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Upsert(s); err != nil {
		return nil, err
	}
	uc.audit.Record(userID, "actualizó sus preferencias", entity.ActivityCategorySettings, meta)
	return toSettingsResponse(s), nil
}

// UpdateTheme acción rápida: cambia solo el tema, conservando el resto.
func (uc *SettingsUseCase) UpdateTheme(userID string, in dto.UpdateThemeRequest, meta dto.RequestMeta) (*dto.SettingsResponse, error) {
	if in.Theme != "light" && in.Theme != "dark" {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.repo.Get(userID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = entity.DefaultSettings(userID)
	}
	s.Theme = in.Theme
	s.UpdatedAt = time.Now()
	if err := uc.repo.Upsert(s); err != nil {
		return nil, err
	}
	uc.audit.Record(userID, "cambió el tema a "+in.Theme, entity.ActivityCategorySettings, meta)
	return toSettingsResponse(s), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		UserID:    s.UserID,
		Theme:     s.Theme,
		Timezone:  s.Timezone,
		Currency:  s.Currency,
		UpdatedAt: s.UpdatedAt,
	}
}
