package usecase

import (
	"context"
	"errors"
	"net/url"

	authdomain "creatortube-backend/internal/auth/domain"
	"creatortube-backend/internal/auth/repository"
	"creatortube-backend/pkg/googleoauth"

	"gorm.io/gorm"
)

var (
	ErrUnauthenticated = errors.New("unauthorized user")
	ErrUserNotFound    = errors.New("user not found")
)

// oauthUsecase implements OAuthUsecase interface
type oauthUsecase struct {
	manager  *googleoauth.Manager
	userRepo repository.UserRepository
}

// NewOAuthUsecase creates a new instance of oauthUsecase
func NewOAuthUsecase(manager *googleoauth.Manager, userRepo repository.UserRepository) OAuthUsecase {
	return &oauthUsecase{
		manager:  manager,
		userRepo: userRepo,
	}
}

func (u *oauthUsecase) AuthorizationURL() (string, error) {
	return u.manager.BuildAuthorizationURL()
}

func (u *oauthUsecase) HandleCallback(ctx context.Context, query url.Values) (*googleoauth.TokenRecord, *googleoauth.Identity, error) {
	return u.manager.HandleCallback(ctx, query)
}

func (u *oauthUsecase) Associate(userID string, token *authdomain.ProviderToken) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if err := u.userRepo.UpdateProviderToken(userID, token); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (u *oauthUsecase) IsConnected(userID string) (bool, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return user.OAuth.Valid(), nil
}
