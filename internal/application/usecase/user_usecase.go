package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-retail-api/internal/application/audit"
	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/domain"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (alta con rol, edición, baja).
// El registro de autoservicio vive en el paquete auth; aquí entra solo
// el back-office del admin/shop manager.
type UserUseCase struct {
	repo  repository.UserRepository
	audit *audit.Recorder
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, rec *audit.Recorder) *UserUseCase {
	return &UserUseCase{repo: repo, audit: rec}
}

// Create alta de usuario con rol explícito. El rol debe pertenecer al
// conjunto cerrado; el email duplicado lo rechaza el constraint de la DB.
func (uc *UserUseCase) Create(actorID string, in dto.CreateUserRequest, meta dto.RequestMeta) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	uc.audit.Record(actorID, fmt.Sprintf("creó el usuario %s con rol %s", user.Email, role), entity.ActivityCategoryUser, meta)
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Update modifica nombre, rol o estado activo (semántica PATCH).
func (uc *UserUseCase) Update(actorID, id string, in dto.UpdateUserRequest, meta dto.RequestMeta) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		role := entity.Role(*in.Role)
		if !role.Valid() {
			return nil, domain.ErrInvalidInput
		}
		user.Role = role
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	uc.audit.Record(actorID, fmt.Sprintf("actualizó el usuario %s", user.Email), entity.ActivityCategoryUser, meta)
	return toUserResponse(user), nil
}

// List lista usuarios paginados.
func (uc *UserUseCase) List(page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	users, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete baja definitiva de un usuario.
func (uc *UserUseCase) Delete(actorID, id string, meta dto.RequestMeta) error {
	if actorID == id {
		// Un usuario no puede eliminarse a sí mismo.
		return domain.ErrConflict
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.audit.Record(actorID, fmt.Sprintf("eliminó el usuario %s", id), entity.ActivityCategoryUser, meta)
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(u.Role),
		Active:       u.Active,
		LastActiveAt: u.LastActiveAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
