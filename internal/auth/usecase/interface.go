package usecase

import (
	authdomain "creatortube-backend/internal/auth/domain"
	authdto "creatortube-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication use cases
type AuthUsecase interface {
	Signup(req *authdto.SignupRequest) error
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(tokenString string) (*authdomain.User, error)
}
