package usecase

import (
	"encoding/json"

	authdomain "creatortube-backend/internal/auth/domain"
)

// UserUsecase defines the interface for profile use cases
type UserUsecase interface {
	GetByID(id string) (*authdomain.User, error)
	GetPreviousData(id string) (authdomain.RawList, error)
	InsertData(id string, items []json.RawMessage) (authdomain.RawList, error)
	GetCommentsData(id string) (authdomain.CommentLogs, error)
}
