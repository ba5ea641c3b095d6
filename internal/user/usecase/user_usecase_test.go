package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	authdomain "creatortube-backend/internal/auth/domain"
	"creatortube-backend/internal/auth/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestUsecase(t *testing.T) (UserUsecase, repository.UserRepository) {
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
	return NewUserUsecase(repo), repo
}

func seedUser(t *testing.T, repo repository.UserRepository) *authdomain.User {
	t.Helper()
	user := &authdomain.User{Name: "Creator", Email: "a@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(user))
	return user
}

func TestGetByID(t *testing.T) {
	uc, repo := newTestUsecase(t)
	user := seedUser(t, repo)

	got, err := uc.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)

	_, err = uc.GetByID("no-such-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetPreviousDataEmpty(t *testing.T) {
	uc, repo := newTestUsecase(t)
	user := seedUser(t, repo)

	data, err := uc.GetPreviousData(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}

func TestInsertData(t *testing.T) {
	uc, repo := newTestUsecase(t)
	user := seedUser(t, repo)

	updated, err := uc.InsertData(user.ID, []json.RawMessage{json.RawMessage(`{"channel":"UC1"}`)})
	require.NoError(t, err)
	require.Len(t, updated, 1)

	updated, err = uc.InsertData(user.ID, []json.RawMessage{json.RawMessage(`{"channel":"UC2"}`)})
	require.NoError(t, err)
	require.Len(t, updated, 2)

	data, err := uc.GetPreviousData(user.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"channel":"UC1"}`, string(data[0]))
	assert.JSONEq(t, `{"channel":"UC2"}`, string(data[1]))
}

func TestInsertDataMissingUser(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.InsertData("no-such-id", []json.RawMessage{json.RawMessage(`{}`)})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetCommentsData(t *testing.T) {
	uc, repo := newTestUsecase(t)
	user := seedUser(t, repo)

	data, err := uc.GetCommentsData(user.ID)
	require.NoError(t, err)
	assert.Empty(t, data)

	require.NoError(t, repo.AppendCommentLog(user.ID, authdomain.CommentReplyLog{
		VideoID:      "vid1",
		RepliedCount: 2,
	}))

	data, err = uc.GetCommentsData(user.ID)
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, "vid1", data[0].VideoID)
	assert.Equal(t, 2, data[0].RepliedCount)
}
