package usecase

import (
	"encoding/json"
	"errors"

	authdomain "creatortube-backend/internal/auth/domain"
	"creatortube-backend/internal/auth/repository"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// userUsecase implements UserUsecase interface
type userUsecase struct {
	userRepo repository.UserRepository
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
	}
}

func (u *userUsecase) GetByID(id string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *userUsecase) GetPreviousData(id string) (authdomain.RawList, error) {
	user, err := u.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user.PreviousData == nil {
		return authdomain.RawList{}, nil
	}
	return user.PreviousData, nil
}

func (u *userUsecase) InsertData(id string, items []json.RawMessage) (authdomain.RawList, error) {
	updated, err := u.userRepo.AppendPreviousData(id, items)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (u *userUsecase) GetCommentsData(id string) (authdomain.CommentLogs, error) {
	user, err := u.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user.CommentsData == nil {
		return authdomain.CommentLogs{}, nil
	}
	return user.CommentsData, nil
}
