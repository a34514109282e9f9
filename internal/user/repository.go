package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/davidmtz/battleship-api/internal/apperrors"
)

type UserRepository interface {
	CreateUser(u *User) error
	FindByName(name string) (*User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CreateUser(u *User) error {
	if err := r.db.Create(u).Error; err != nil {
		return apperrors.NewAppError(500, "error creating user", err)
	}
	return nil
}

// FindByName returns (nil, nil) when no user carries the name.
func (r *GormUserRepository) FindByName(name string) (*User, error) {
	var u User
	result := r.db.Where("name = ?", name).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "error fetching user", result.Error)
	}
	return &u, nil
}
