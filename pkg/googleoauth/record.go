package googleoauth

import "time"

// TokenRecord is the canonical shape of a completed token exchange. It is
// only ever fully populated: a provider response carrying an error field
// short-circuits before a record is built.
type TokenRecord struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	Scope        string    `json:"scope"`
	TokenType    string    `json:"tokenType"`
	ExpiresIn    int64     `json:"expiresIn"` // seconds, as reported by the provider
	ObtainedAt   time.Time `json:"obtainedAt"`
}

// ExpiresAt derives the absolute expiry from the exchange timestamp.
func (r *TokenRecord) ExpiresAt() time.Time {
	return r.ObtainedAt.Add(time.Duration(r.ExpiresIn) * time.Second)
}

// Valid reports whether the record can authenticate requests right now:
// both tokens present and the access token not yet expired.
func (r *TokenRecord) Valid() bool {
	if r == nil || r.AccessToken == "" || r.RefreshToken == "" {
		return false
	}
	return time.Now().Before(r.ExpiresAt())
}

// Identity is the provider profile fetched with the fresh access token,
// kept as auxiliary metadata next to the token record.
type Identity struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
