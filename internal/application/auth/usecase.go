package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-retail-api/internal/application/audit"
	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/domain"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
	"github.com/jhoicas/pos-retail-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Policy vigencias de remember/reset tokens y base del enlace de reset.
type Policy struct {
	RememberTokenDays int
	ResetTokenMinutes int
	ResetBaseURL      string
}

// AuthUseCase casos de uso de autenticación: registro, login, refresh y reset.
type AuthUseCase struct {
	userRepo repository.UserRepository
	mailer   ResetMailer
	audit    *audit.Recorder
	jwtCfg   JWTConfig
	policy   Policy
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, mailer ResetMailer, rec *audit.Recorder, jwtCfg JWTConfig, policy Policy) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, mailer: mailer, audit: rec, jwtCfg: jwtCfg, policy: policy}
}

// RegisterUser alta de autoservicio: siempre rol customer. La unicidad del
// email la decide el constraint de la DB (ErrEmailAlreadyExists en 23505),
// no un check previo.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest, meta dto.RequestMeta) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleCustomer,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	uc.audit.Record(user.ID, "se registró en la tienda", entity.ActivityCategoryAuth, meta)
	return toUserResponse(user), nil
}

// Login verifica email/password y genera el JWT de sesión.
//
// Internamente distingue "usuario inexistente/inactivo" de "contraseña
// inválida" (para logs y tests); el handler HTTP colapsa ambos en un 401
// genérico para no permitir enumeración de cuentas.
func (uc *AuthUseCase) Login(in dto.LoginRequest, meta dto.RequestMeta) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidPassword
	}
	route, ok := user.Role.LandingRoute()
	if !ok {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	var remember string
	if in.RememberMe {
		remember, err = uc.rotateRememberToken(user)
		if err != nil {
			return nil, err
		}
	}
	if err := uc.userRepo.TouchLastActive(user.ID); err != nil {
		return nil, err
	}
	uc.audit.Record(user.ID, "inició sesión", entity.ActivityCategoryAuth, meta)
	return &dto.LoginResponse{
		Token:         token,
		RememberToken: remember,
		LandingRoute:  route,
		User:          *toUserResponse(user),
	}, nil
}

// Logout invalida el remember_token del usuario y registra la salida.
func (uc *AuthUseCase) Logout(userID string, meta dto.RequestMeta) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.RememberToken = ""
	user.RememberTokenExpires = nil
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return err
	}
	uc.audit.Record(userID, "cerró sesión", entity.ActivityCategoryAuth, meta)
	return nil
}

// Refresh intercambia un remember_token vigente por una sesión nueva.
// El token se rota en cada uso: un token robado sirve a lo sumo una vez.
func (uc *AuthUseCase) Refresh(in dto.RefreshRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByRememberToken(in.RememberToken)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	route, ok := user.Role.LandingRoute()
	if !ok {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	remember, err := uc.rotateRememberToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:         token,
		RememberToken: remember,
		LandingRoute:  route,
		User:          *toUserResponse(user),
	}, nil
}

// ForgotPassword genera el token de reset y envía el enlace. Si el email no
// existe retorna nil igualmente: el endpoint no revela si la cuenta existe.
func (uc *AuthUseCase) ForgotPassword(in dto.ForgotPasswordRequest) error {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil || !user.Active {
		return nil
	}
	token := uuid.New().String()
	expires := time.Now().Add(time.Duration(uc.policy.ResetTokenMinutes) * time.Minute)
	user.ResetToken = token
	user.ResetTokenExpires = &expires
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return err
	}
	link := fmt.Sprintf("%s?token=%s", uc.policy.ResetBaseURL, token)
	return uc.mailer.SendPasswordReset(user.Email, user.Name, link)
}

// ResetPassword consume el token de reset y fija la nueva contraseña.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	user, err := uc.userRepo.GetByResetToken(in.Token)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrTokenExpired
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.ResetToken = ""
	user.ResetTokenExpires = nil
	// Cambiar la contraseña también invalida el remember_token vigente.
	user.RememberToken = ""
	user.RememberTokenExpires = nil
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

func (uc *AuthUseCase) rotateRememberToken(user *entity.User) (string, error) {
	token := uuid.New().String()
	expires := time.Now().Add(time.Duration(uc.policy.RememberTokenDays) * 24 * time.Hour)
	user.RememberToken = token
	user.RememberTokenExpires = &expires
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return "", err
	}
	return token, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
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
