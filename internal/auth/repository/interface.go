package repository

import (
	"encoding/json"
	"time"

	authdomain "creatortube-backend/internal/auth/domain"
)

// UserRepository defines the persistence operations for users and their
// session refresh tokens.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	FindAll() ([]*authdomain.User, error)
	Update(user *authdomain.User) error

	// UpdateProviderToken overwrites the user's attached Google token
	// record whole. Returns gorm.ErrRecordNotFound when the user does
	// not exist.
	UpdateProviderToken(userID string, token *authdomain.ProviderToken) error
	// UpdateProviderAccessToken replaces only the access token and its
	// expiry bookkeeping, used when the API client refreshes mid-request.
	UpdateProviderAccessToken(userID, accessToken string, obtainedAt time.Time, expiresIn int64) error

	AppendPreviousData(userID string, items []json.RawMessage) (authdomain.RawList, error)
	AppendCommentLog(userID string, log authdomain.CommentReplyLog) error
	CacheChannelData(userID, channelID string, payload json.RawMessage) error

	SaveRefreshToken(token *authdomain.RefreshToken) error
	FindRefreshToken(token string) (*authdomain.RefreshToken, error)
	DeleteRefreshToken(token string) error
	DeleteRefreshTokensByUser(userID string) error
}
