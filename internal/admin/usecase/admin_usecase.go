package usecase

import (
	"errors"

	authdomain "creatortube-backend/internal/auth/domain"
	"creatortube-backend/internal/auth/repository"
)

var ErrTargetNotFound = errors.New("target user not found")

type adminUsecase struct {
	userRepo repository.UserRepository
}

// NewAdminUsecase creates a new AdminUsecase
func NewAdminUsecase(userRepo repository.UserRepository) AdminUsecase {
	return &adminUsecase{
		userRepo: userRepo,
	}
}

func (u *adminUsecase) ListUsers() ([]*authdomain.User, error) {
	return u.userRepo.FindAll()
}

func (u *adminUsecase) GetUser(id string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrTargetNotFound
	}
	return user, nil
}
