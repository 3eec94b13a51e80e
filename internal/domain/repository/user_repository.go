package repository

import "github.com/jhoicas/pos-retail-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByEmail retorna el usuario por email, activo o no; nil si no existe.
	GetByEmail(email string) (*entity.User, error)
	GetByRememberToken(token string) (*entity.User, error)
	GetByResetToken(token string) (*entity.User, error)
	Update(user *entity.User) error
	// TouchLastActive marca el último acceso sin tocar updated_at del resto de campos.
	TouchLastActive(id string) error
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
