package repository

import (
	"encoding/json"
	"errors"
	"time"

	authdomain "creatortube-backend/internal/auth/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(user *authdomain.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll() ([]*authdomain.User, error) {
	var users []*authdomain.User
	if err := r.db.Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(user *authdomain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

func (r *userRepository) UpdateProviderToken(userID string, token *authdomain.ProviderToken) error {
	res := r.db.Model(&authdomain.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"oauth_access_token":  token.AccessToken,
		"oauth_refresh_token": token.RefreshToken,
		"oauth_scope":         token.Scope,
		"oauth_token_type":    token.TokenType,
		"oauth_expires_in":    token.ExpiresIn,
		"oauth_obtained_at":   token.ObtainedAt,
		"oauth_google_id":     token.GoogleID,
		"oauth_google_email":  token.GoogleEmail,
		"oauth_google_name":   token.GoogleName,
		"oauth_picture":       token.Picture,
		"updated_at":          time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) UpdateProviderAccessToken(userID, accessToken string, obtainedAt time.Time, expiresIn int64) error {
	res := r.db.Model(&authdomain.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"oauth_access_token": accessToken,
		"oauth_obtained_at":  obtainedAt,
		"oauth_expires_in":   expiresIn,
		"updated_at":         time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) AppendPreviousData(userID string, items []json.RawMessage) (authdomain.RawList, error) {
	var updated authdomain.RawList
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user authdomain.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		user.PreviousData = append(user.PreviousData, items...)
		user.UpdatedAt = time.Now()
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		updated = user.PreviousData
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *userRepository) AppendCommentLog(userID string, log authdomain.CommentReplyLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user authdomain.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		user.CommentsData = append(user.CommentsData, log)
		user.UpdatedAt = time.Now()
		return tx.Save(&user).Error
	})
}

func (r *userRepository) CacheChannelData(userID, channelID string, payload json.RawMessage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user authdomain.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		if user.ChannelData == nil {
			user.ChannelData = authdomain.ChannelCache{}
		}
		user.ChannelData[channelID] = payload
		user.UpdatedAt = time.Now()
		return tx.Save(&user).Error
	})
}

func (r *userRepository) SaveRefreshToken(token *authdomain.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *userRepository) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	var refreshToken authdomain.RefreshToken
	err := r.db.Where("token = ?", token).First(&refreshToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &refreshToken, nil
}

func (r *userRepository) DeleteRefreshToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&authdomain.RefreshToken{}).Error
}

func (r *userRepository) DeleteRefreshTokensByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&authdomain.RefreshToken{}).Error
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
