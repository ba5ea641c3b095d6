package dto

import "time"

// OAuthData is the token payload the frontend hands back on association.
// Field names match the callback redirect's oauth_data JSON.
type OAuthData struct {
	GoogleID     string     `json:"googleId"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Picture      string     `json:"picture"`
	AccessToken  string     `json:"accessToken" binding:"required"`
	RefreshToken string     `json:"refreshToken"`
	ExpiresIn    int64      `json:"expiresIn"`
	Scope        string     `json:"scope"`
	TokenType    string     `json:"tokenType"`
	ConnectedAt  *time.Time `json:"connectedAt"`
}

type AssociateRequest struct {
	OAuthData *OAuthData `json:"oauthData" binding:"required"`
}

type StatusResponse struct {
	Connected bool `json:"connected"`
}
