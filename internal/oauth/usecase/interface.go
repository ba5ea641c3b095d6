package usecase

import (
	"context"
	"net/url"

	authdomain "creatortube-backend/internal/auth/domain"
	"creatortube-backend/pkg/googleoauth"
)

// OAuthUsecase drives the Google connection flow for application users.
type OAuthUsecase interface {
	// AuthorizationURL builds the consent-page redirect target.
	AuthorizationURL() (string, error)
	// HandleCallback completes the code exchange and profile fetch for a
	// callback request's query parameters.
	HandleCallback(ctx context.Context, query url.Values) (*googleoauth.TokenRecord, *googleoauth.Identity, error)
	// Associate attaches a token record to the user, overwriting any
	// previous one.
	Associate(userID string, token *authdomain.ProviderToken) error
	// IsConnected reports whether the user holds a currently valid token
	// record. Missing or expired records report false, not an error.
	IsConnected(userID string) (bool, error)
}
