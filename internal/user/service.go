package user

import (
	"github.com/davidmtz/battleship-api/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a user with a unique name. The email is optional.
func (s *UserService) Register(name, email string) (*User, error) {
	if name == "" {
		return nil, apperrors.NewAppError(400, "A username is required", nil)
	}

	existing, err := s.repo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewAppError(409, "A user with that name already exists", nil)
	}

	u := &User{
		Name:  name,
		Email: email,
	}
	if err := s.repo.CreateUser(u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *UserService) FindByName(name string) (*User, error) {
	u, err := s.repo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewAppError(404, "A user with that name does not exist", nil)
	}
	return u, nil
}
