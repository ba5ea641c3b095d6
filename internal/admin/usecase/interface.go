package usecase

import authdomain "creatortube-backend/internal/auth/domain"

// AdminUsecase defines admin-only operations over user accounts
type AdminUsecase interface {
	ListUsers() ([]*authdomain.User, error)
	GetUser(id string) (*authdomain.User, error)
}
