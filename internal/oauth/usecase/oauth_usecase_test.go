package usecase

import (
	"fmt"
	"strings"
	"testing"
	"time"

	authdomain "creatortube-backend/internal/auth/domain"
	"creatortube-backend/internal/auth/repository"
	"creatortube-backend/pkg/googleoauth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestUsecase(t *testing.T) (OAuthUsecase, repository.UserRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}); err != nil {
		t.Fatalf("migrate db: %v", err)
	}
	repo := repository.NewUserRepository(db)
	manager := googleoauth.NewManager(googleoauth.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "https://app.example.com/api/oauth/google/callback",
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
	})
	return NewOAuthUsecase(manager, repo), repo
}

func seedUser(t *testing.T, repo repository.UserRepository) *authdomain.User {
	t.Helper()
	user := &authdomain.User{Name: "Creator", Email: "a@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(user))
	return user
}

func TestAuthorizationURL(t *testing.T) {
	uc, _ := newTestUsecase(t)

	url, err := uc.AuthorizationURL()
	require.NoError(t, err)
	assert.Contains(t, url, "client_id=client-id")
	assert.Contains(t, url, "response_type=code")
}

func TestAssociate(t *testing.T) {
	uc, repo := newTestUsecase(t)
	user := seedUser(t, repo)

	token := &authdomain.ProviderToken{
		AccessToken:  "A1",
		RefreshToken: "R1",
		ExpiresIn:    3600,
		ObtainedAt:   time.Now(),
		GoogleID:     "g1",
		GoogleEmail:  "a@gmail.com",
	}
	require.NoError(t, uc.Associate(user.ID, token))

	got, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "A1", got.OAuth.AccessToken)
	assert.Equal(t, "g1", got.OAuth.GoogleID)
}

func TestAssociateOverwritesPrevious(t *testing.T) {
	uc, repo := newTestUsecase(t)
	user := seedUser(t, repo)

	require.NoError(t, uc.Associate(user.ID, &authdomain.ProviderToken{
		AccessToken:  "A1",
		RefreshToken: "R1",
		Scope:        "email profile",
		ExpiresIn:    3600,
		ObtainedAt:   time.Now(),
	}))
	require.NoError(t, uc.Associate(user.ID, &authdomain.ProviderToken{
		AccessToken:  "A2",
		RefreshToken: "R2",
		ExpiresIn:    1800,
		ObtainedAt:   time.Now(),
	}))

	got, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "A2", got.OAuth.AccessToken)
	assert.Equal(t, "R2", got.OAuth.RefreshToken)
	// The replacement is whole, fields absent from the new record clear.
	assert.Empty(t, got.OAuth.Scope)
	assert.EqualValues(t, 1800, got.OAuth.ExpiresIn)
}

func TestAssociateErrors(t *testing.T) {
	uc, _ := newTestUsecase(t)

	err := uc.Associate("", &authdomain.ProviderToken{AccessToken: "A"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	err = uc.Associate("no-such-id", &authdomain.ProviderToken{AccessToken: "A"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestIsConnected(t *testing.T) {
	uc, repo := newTestUsecase(t)
	user := seedUser(t, repo)

	connected, err := uc.IsConnected(user.ID)
	require.NoError(t, err)
	assert.False(t, connected)

	require.NoError(t, uc.Associate(user.ID, &authdomain.ProviderToken{
		AccessToken:  "A1",
		RefreshToken: "R1",
		ExpiresIn:    3600,
		ObtainedAt:   time.Now(),
	}))
	connected, err = uc.IsConnected(user.ID)
	require.NoError(t, err)
	assert.True(t, connected)
}

func TestIsConnectedExpiredToken(t *testing.T) {
	uc, repo := newTestUsecase(t)
	user := seedUser(t, repo)

	require.NoError(t, uc.Associate(user.ID, &authdomain.ProviderToken{
		AccessToken:  "A1",
		RefreshToken: "R1",
		ExpiresIn:    3600,
		ObtainedAt:   time.Now().Add(-2 * time.Hour),
	}))

	connected, err := uc.IsConnected(user.ID)
	require.NoError(t, err)
	assert.False(t, connected)
}

func TestIsConnectedMissingUser(t *testing.T) {
	uc, _ := newTestUsecase(t)

	connected, err := uc.IsConnected("no-such-id")
	require.NoError(t, err)
	assert.False(t, connected)
}
