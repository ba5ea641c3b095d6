package googleoauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultAuthEndpoint     = "https://accounts.google.com/o/oauth2/v2/auth"
	defaultTokenEndpoint    = "https://oauth2.googleapis.com/token"
	defaultUserInfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

	defaultTimeout = 15 * time.Second
)

// Config holds the static parameters of the authorization-code flow.
// Endpoint fields default to the Google endpoints and exist so tests can
// point the manager at a stub server.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string
	AccessType   string // "online" or "offline", default "offline"
	Prompt       string // "none", "consent" or "select_account", default "consent"
	Timeout      time.Duration

	AuthEndpoint     string
	TokenEndpoint    string
	UserInfoEndpoint string
}

// Manager drives the three-step authorization-code grant against Google:
// redirect URL construction, callback handling (code exchange plus profile
// fetch) and refresh-token bookkeeping. It holds no per-request state; each
// operation runs to completion within the request that triggered it.
type Manager struct {
	cfg    Config
	client *http.Client
}

func NewManager(cfg Config) *Manager {
	if cfg.AccessType == "" {
		cfg.AccessType = "offline"
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "consent"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.AuthEndpoint == "" {
		cfg.AuthEndpoint = defaultAuthEndpoint
	}
	if cfg.TokenEndpoint == "" {
		cfg.TokenEndpoint = defaultTokenEndpoint
	}
	if cfg.UserInfoEndpoint == "" {
		cfg.UserInfoEndpoint = defaultUserInfoEndpoint
	}
	return &Manager{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// BuildAuthorizationURL constructs the provider consent URL. Pure: the
// caller issues the actual HTTP redirect. The flow carries no CSRF state
// parameter; the callback contract expects only code or error.
func (m *Manager) BuildAuthorizationURL() (string, error) {
	if m.cfg.ClientID == "" {
		return "", fmt.Errorf("%w: client id is empty", ErrConfiguration)
	}
	redirect, err := url.Parse(m.cfg.RedirectURI)
	if err != nil || !redirect.IsAbs() {
		return "", fmt.Errorf("%w: redirect uri %q is not an absolute URL", ErrConfiguration, m.cfg.RedirectURI)
	}
	if len(m.cfg.Scopes) == 0 {
		return "", fmt.Errorf("%w: at least one scope is required", ErrConfiguration)
	}
	switch m.cfg.AccessType {
	case "online", "offline":
	default:
		return "", fmt.Errorf("%w: unknown access type %q", ErrConfiguration, m.cfg.AccessType)
	}
	switch m.cfg.Prompt {
	case "none", "consent", "select_account":
	default:
		return "", fmt.Errorf("%w: unknown prompt %q", ErrConfiguration, m.cfg.Prompt)
	}

	u, err := url.Parse(m.cfg.AuthEndpoint)
	if err != nil {
		return "", fmt.Errorf("%w: bad auth endpoint: %v", ErrConfiguration, err)
	}
	q := url.Values{}
	q.Set("client_id", m.cfg.ClientID)
	q.Set("redirect_uri", m.cfg.RedirectURI)
	q.Set("response_type", "code")
	q.Set("scope", strings.Join(m.cfg.Scopes, " "))
	q.Set("access_type", m.cfg.AccessType)
	q.Set("prompt", m.cfg.Prompt)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// tokenResponse is the token endpoint's JSON body, success or rejection.
type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	Scope            string `json:"scope"`
	TokenType        string `json:"token_type"`
	ExpiresIn        int64  `json:"expires_in"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// userInfoResponse is the userinfo endpoint's JSON body. Its error shape is
// nested, unlike the token endpoint's.
type userInfoResponse struct {
	Identity
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// HandleCallback consumes the redirect callback's query parameters and runs
// the remainder of the grant: code exchange then profile fetch. It returns
// either a fully populated record plus identity or a typed *Error; no
// partial state is ever exposed.
func (m *Manager) HandleCallback(ctx context.Context, query url.Values) (*TokenRecord, *Identity, error) {
	if denied := query.Get("error"); denied != "" {
		return nil, nil, &Error{Kind: KindProviderDenied, Detail: denied}
	}
	code := query.Get("code")
	if code == "" {
		return nil, nil, &Error{Kind: KindMissingCode}
	}

	form := url.Values{}
	form.Set("client_id", m.cfg.ClientID)
	form.Set("client_secret", m.cfg.ClientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", m.cfg.RedirectURI)

	tok, err := m.exchange(ctx, form, KindTokenExchangeRejected)
	if err != nil {
		return nil, nil, err
	}

	identity, err := m.fetchIdentity(ctx, tok.AccessToken)
	if err != nil {
		return nil, nil, err
	}

	record := &TokenRecord{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Scope:        tok.Scope,
		TokenType:    tok.TokenType,
		ExpiresIn:    tok.ExpiresIn,
		ObtainedAt:   time.Now(),
	}
	return record, identity, nil
}

// RefreshIfNeeded returns the record unchanged, without any network call,
// while it is still valid. An expired record with a refresh token is
// exchanged for a fresh one; the refresh token carries over unless the
// provider rotates it. Any failure comes back as KindRefreshFailed and the
// caller must restart the authorization flow.
func (m *Manager) RefreshIfNeeded(ctx context.Context, record *TokenRecord) (*TokenRecord, error) {
	if record.Valid() {
		return record, nil
	}
	if record == nil || record.RefreshToken == "" {
		return nil, &Error{Kind: KindRefreshFailed, Detail: "no refresh token"}
	}

	form := url.Values{}
	form.Set("client_id", m.cfg.ClientID)
	form.Set("client_secret", m.cfg.ClientSecret)
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", record.RefreshToken)

	tok, err := m.exchange(ctx, form, KindRefreshFailed)
	if err != nil {
		var oe *Error
		if errors.As(err, &oe) && oe.Kind != KindRefreshFailed {
			return nil, &Error{Kind: KindRefreshFailed, Detail: oe.Detail, Err: oe}
		}
		return nil, err
	}

	refreshed := &TokenRecord{
		AccessToken:  tok.AccessToken,
		RefreshToken: record.RefreshToken,
		Scope:        record.Scope,
		TokenType:    record.TokenType,
		ExpiresIn:    tok.ExpiresIn,
		ObtainedAt:   time.Now(),
	}
	if tok.RefreshToken != "" {
		refreshed.RefreshToken = tok.RefreshToken
	}
	if tok.Scope != "" {
		refreshed.Scope = tok.Scope
	}
	if tok.TokenType != "" {
		refreshed.TokenType = tok.TokenType
	}
	return refreshed, nil
}

// exchange POSTs a form-encoded request to the token endpoint. Transport
// failures surface as KindTransportError; provider-level rejections (an
// error field in the body, or a non-2xx status without one) surface as
// rejectKind.
func (m *Manager) exchange(ctx context.Context, form url.Values, rejectKind ErrorKind) (*tokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.TokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &Error{Kind: KindTransportError, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransportError, Err: err}
	}
	defer resp.Body.Close()

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, &Error{Kind: KindTransportError, Detail: "malformed token response", Err: err}
	}

	if tok.Error != "" {
		detail := tok.ErrorDescription
		if detail == "" {
			detail = tok.Error
		}
		return nil, &Error{Kind: rejectKind, Detail: detail}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Kind: rejectKind, Detail: fmt.Sprintf("token endpoint returned status %d", resp.StatusCode)}
	}
	return &tok, nil
}

// fetchIdentity GETs the userinfo endpoint with the access token as bearer
// credential. All failures on this step map to KindIdentityFetchFailed.
func (m *Manager) fetchIdentity(ctx context.Context, accessToken string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.cfg.UserInfoEndpoint, nil)
	if err != nil {
		return nil, &Error{Kind: KindIdentityFetchFailed, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindIdentityFetchFailed, Err: err}
	}
	defer resp.Body.Close()

	var info userInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, &Error{Kind: KindIdentityFetchFailed, Detail: "malformed userinfo response", Err: err}
	}
	if info.Error != nil {
		return nil, &Error{Kind: KindIdentityFetchFailed, Detail: info.Error.Message}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Kind: KindIdentityFetchFailed, Detail: fmt.Sprintf("userinfo endpoint returned status %d", resp.StatusCode)}
	}

	identity := info.Identity
	return &identity, nil
}
