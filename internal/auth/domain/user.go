package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type User struct {
	ID           string        `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name"`
	ChannelLink  string        `json:"channel_link"`
	Email        string        `json:"email" gorm:"uniqueIndex"`
	Password     string        `json:"-"` // Never return password in JSON
	Role         string        `json:"role" gorm:"default:user"` // "user" or "admin"
	PreviousData RawList       `json:"previous_data" gorm:"type:jsonb"`
	CommentsData CommentLogs   `json:"comments_data" gorm:"type:jsonb"`
	ChannelData  ChannelCache  `json:"-" gorm:"type:jsonb"`
	OAuth        ProviderToken `json:"oauth" gorm:"embedded;embeddedPrefix:oauth_"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProviderToken is the Google token record attached to a user. At most one
// exists per user; association overwrites it whole, never merges.
type ProviderToken struct {
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	Scope        string    `json:"scope,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	ExpiresIn    int64     `json:"expires_in,omitempty"`
	ObtainedAt   time.Time `json:"obtained_at,omitempty"`
	GoogleID     string    `json:"google_id,omitempty"`
	GoogleEmail  string    `json:"google_email,omitempty"`
	GoogleName   string    `json:"google_name,omitempty"`
	Picture      string    `json:"picture,omitempty"`
}

// ExpiresAt derives the absolute expiry of the access token.
func (t *ProviderToken) ExpiresAt() time.Time {
	return t.ObtainedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// Valid reports whether the token can be used right now: both tokens
// present and not yet expired. An expired or absent token is simply
// invalid, never an error.
func (t *ProviderToken) Valid() bool {
	if t == nil || t.AccessToken == "" || t.RefreshToken == "" {
		return false
	}
	return time.Now().Before(t.ExpiresAt())
}

type RefreshToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RepliedComment is one fetched comment together with the reply sent back.
type RepliedComment struct {
	CommentID string `json:"comment_id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	ReplyText string `json:"reply_text"`
}

// CommentReplyLog records one auto-reply run against a video.
type CommentReplyLog struct {
	VideoID      string           `json:"video_id"`
	Comments     []RepliedComment `json:"comments"`
	RepliedCount int              `json:"replied_count"`
}

// RawList stores an arbitrary JSON array in a single jsonb column.
type RawList []json.RawMessage

func (l RawList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *RawList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// CommentLogs stores the per-video reply history in a single jsonb column.
type CommentLogs []CommentReplyLog

func (c CommentLogs) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal(c)
	return string(b), err
}

func (c *CommentLogs) Scan(src interface{}) error {
	return scanJSON(src, c)
}

// ChannelCache stores raw channel lookups keyed by channel ID.
type ChannelCache map[string]json.RawMessage

func (c ChannelCache) Value() (driver.Value, error) {
	if c == nil {
		return "{}", nil
	}
	b, err := json.Marshal(c)
	return string(b), err
}

func (c *ChannelCache) Scan(src interface{}) error {
	return scanJSON(src, c)
}

func scanJSON(src, dst interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	}
	return errors.New("unsupported source type for jsonb column")
}
