package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	authdomain "creatortube-backend/internal/auth/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedUser(t *testing.T, repo UserRepository, email string) *authdomain.User {
	t.Helper()
	user := &authdomain.User{
		Name:     "Creator",
		Email:    email,
		Password: "hashed",
		Role:     authdomain.RoleUser,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	created := seedUser(t, repo, "a@example.com")
	assert.NotEmpty(t, created.ID)

	byEmail, err := repo.FindByEmail("a@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "a@example.com", byID.Email)
}

func TestUserRepository_FindMissingReturnsNil(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.FindByID("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_UpdateProviderToken(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	user := seedUser(t, repo, "a@example.com")

	first := &authdomain.ProviderToken{
		AccessToken:  "A1",
		RefreshToken: "R1",
		Scope:        "email",
		TokenType:    "Bearer",
		ExpiresIn:    3600,
		ObtainedAt:   time.Now(),
		GoogleID:     "g1",
	}
	require.NoError(t, repo.UpdateProviderToken(user.ID, first))

	// A second association overwrites the record whole, nothing survives
	// from the first.
	second := &authdomain.ProviderToken{
		AccessToken:  "A2",
		RefreshToken: "R2",
		ExpiresIn:    1800,
		ObtainedAt:   time.Now(),
		GoogleID:     "g2",
	}
	require.NoError(t, repo.UpdateProviderToken(user.ID, second))

	got, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "A2", got.OAuth.AccessToken)
	assert.Equal(t, "R2", got.OAuth.RefreshToken)
	assert.Equal(t, "g2", got.OAuth.GoogleID)
	assert.Empty(t, got.OAuth.Scope)
	assert.Empty(t, got.OAuth.TokenType)
}

func TestUserRepository_UpdateProviderTokenMissingUser(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	err := repo.UpdateProviderToken("no-such-id", &authdomain.ProviderToken{AccessToken: "A"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_UpdateProviderAccessToken(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	user := seedUser(t, repo, "a@example.com")

	require.NoError(t, repo.UpdateProviderToken(user.ID, &authdomain.ProviderToken{
		AccessToken:  "A1",
		RefreshToken: "R1",
		ExpiresIn:    3600,
		ObtainedAt:   time.Now().Add(-2 * time.Hour),
	}))

	obtained := time.Now()
	require.NoError(t, repo.UpdateProviderAccessToken(user.ID, "A2", obtained, 3600))

	got, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "A2", got.OAuth.AccessToken)
	// Refresh token is untouched by an access-token rotation.
	assert.Equal(t, "R1", got.OAuth.RefreshToken)
	assert.True(t, got.OAuth.Valid())
}

func TestUserRepository_AppendPreviousData(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	user := seedUser(t, repo, "a@example.com")

	updated, err := repo.AppendPreviousData(user.ID, []json.RawMessage{json.RawMessage(`{"n":1}`)})
	require.NoError(t, err)
	require.Len(t, updated, 1)

	updated, err = repo.AppendPreviousData(user.ID, []json.RawMessage{json.RawMessage(`{"n":2}`), json.RawMessage(`{"n":3}`)})
	require.NoError(t, err)
	require.Len(t, updated, 3)
	assert.JSONEq(t, `{"n":1}`, string(updated[0]))
	assert.JSONEq(t, `{"n":3}`, string(updated[2]))

	_, err = repo.AppendPreviousData("no-such-id", []json.RawMessage{json.RawMessage(`{}`)})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_AppendCommentLog(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	user := seedUser(t, repo, "a@example.com")

	log := authdomain.CommentReplyLog{
		VideoID: "vid1",
		Comments: []authdomain.RepliedComment{
			{CommentID: "c1", Author: "Ann", Text: "Nice", ReplyText: "Thank you for your comment, Ann!"},
		},
		RepliedCount: 1,
	}
	require.NoError(t, repo.AppendCommentLog(user.ID, log))
	require.NoError(t, repo.AppendCommentLog(user.ID, authdomain.CommentReplyLog{VideoID: "vid2"}))

	got, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.Len(t, got.CommentsData, 2)
	assert.Equal(t, "vid1", got.CommentsData[0].VideoID)
	assert.Equal(t, 1, got.CommentsData[0].RepliedCount)
	assert.Equal(t, "Ann", got.CommentsData[0].Comments[0].Author)
}

func TestUserRepository_CacheChannelData(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	user := seedUser(t, repo, "a@example.com")

	require.NoError(t, repo.CacheChannelData(user.ID, "UC123", json.RawMessage(`{"title":"My Channel"}`)))

	got, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.Contains(t, got.ChannelData, "UC123")
	assert.JSONEq(t, `{"title":"My Channel"}`, string(got.ChannelData["UC123"]))
}

func TestUserRepository_RefreshTokens(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	user := seedUser(t, repo, "a@example.com")

	token := &authdomain.RefreshToken{
		Token:     "tok1",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.SaveRefreshToken(token))

	found, err := repo.FindRefreshToken("tok1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.UserID)

	require.NoError(t, repo.DeleteRefreshToken("tok1"))
	found, err = repo.FindRefreshToken("tok1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepository_DeleteRefreshTokensByUser(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	user := seedUser(t, repo, "a@example.com")

	require.NoError(t, repo.SaveRefreshToken(&authdomain.RefreshToken{Token: "t1", UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, repo.SaveRefreshToken(&authdomain.RefreshToken{Token: "t2", UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, repo.SaveRefreshToken(&authdomain.RefreshToken{Token: "t3", UserID: "other", ExpiresAt: time.Now().Add(time.Hour)}))

	require.NoError(t, repo.DeleteRefreshTokensByUser(user.ID))

	for _, tok := range []string{"t1", "t2"} {
		found, err := repo.FindRefreshToken(tok)
		require.NoError(t, err)
		assert.Nil(t, found)
	}
	found, err := repo.FindRefreshToken("t3")
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
