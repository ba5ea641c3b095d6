package delivery

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"time"

	authdelivery "creatortube-backend/internal/auth/delivery"
	authdomain "creatortube-backend/internal/auth/domain"
	oauthdto "creatortube-backend/internal/oauth/dto"
	"creatortube-backend/internal/oauth/usecase"
	"creatortube-backend/pkg/config"
	"creatortube-backend/pkg/googleoauth"

	"github.com/gin-gonic/gin"
)

// OAuthHandler handles the Google connection HTTP flow
type OAuthHandler struct {
	oauthUsecase usecase.OAuthUsecase
	config       *config.Config
}

// NewOAuthHandler creates a new OAuthHandler
func NewOAuthHandler(oauthUsecase usecase.OAuthUsecase, cfg *config.Config) *OAuthHandler {
	return &OAuthHandler{
		oauthUsecase: oauthUsecase,
		config:       cfg,
	}
}

// ConnectGoogle redirects the browser to Google's consent page
// GET /api/oauth/google
func (h *OAuthHandler) ConnectGoogle(c *gin.Context) {
	authURL, err := h.oauthUsecase.AuthorizationURL()
	if err != nil {
		log.Printf("[ERROR] oauth configuration: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "oauth is not configured"})
		return
	}
	c.Redirect(http.StatusFound, authURL)
}

// HandleCallback completes the handshake and bounces the browser back to
// the frontend, carrying either oauth_data or oauth_error in the query.
// GET /api/oauth/google/callback
func (h *OAuthHandler) HandleCallback(c *gin.Context) {
	record, identity, err := h.oauthUsecase.HandleCallback(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		// Raw provider strings stay in the server log; the frontend only
		// sees them percent-encoded inside its own query parameter.
		log.Printf("[WARN] oauth callback failed: %v", err)
		h.redirectWithError(c, err)
		return
	}

	payload := oauthdto.OAuthData{
		GoogleID:     identity.ID,
		Name:         identity.Name,
		Email:        identity.Email,
		Picture:      identity.Picture,
		AccessToken:  record.AccessToken,
		RefreshToken: record.RefreshToken,
		ExpiresIn:    record.ExpiresIn,
		Scope:        record.Scope,
		TokenType:    record.TokenType,
		ConnectedAt:  &record.ObtainedAt,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode oauth data"})
		return
	}

	redirect := h.config.FrontendURL + "?oauth_success=true&oauth_data=" + url.QueryEscape(string(raw))
	c.Redirect(http.StatusFound, redirect)
}

func (h *OAuthHandler) redirectWithError(c *gin.Context, err error) {
	reason := string(googleoauth.KindOf(err))
	if reason == "" {
		reason = "oauth_failed"
	}
	var oe *googleoauth.Error
	if errors.As(err, &oe) && oe.Detail != "" {
		reason = oe.Detail
	}
	c.Redirect(http.StatusFound, h.config.FrontendURL+"?oauth_error="+url.QueryEscape(reason))
}

// Associate attaches the token record to the authenticated user
// POST /api/oauth/associate
func (h *OAuthHandler) Associate(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": usecase.ErrUnauthenticated.Error()})
		return
	}

	var req oauthdto.AssociateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OAuth data is required"})
		return
	}

	data := req.OAuthData
	obtainedAt := time.Now()
	if data.ConnectedAt != nil {
		obtainedAt = *data.ConnectedAt
	}

	token := &authdomain.ProviderToken{
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		Scope:        data.Scope,
		TokenType:    data.TokenType,
		ExpiresIn:    data.ExpiresIn,
		ObtainedAt:   obtainedAt,
		GoogleID:     data.GoogleID,
		GoogleEmail:  data.Email,
		GoogleName:   data.Name,
		Picture:      data.Picture,
	}

	if err := h.oauthUsecase.Associate(user.ID, token); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "YouTube account successfully connected",
		"user": gin.H{
			"name":           user.Name,
			"email":          user.Email,
			"oauthConnected": true,
		},
	})
}

// Status reports whether the authenticated user holds a valid token record
// GET /api/oauth/status
func (h *OAuthHandler) Status(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": usecase.ErrUnauthenticated.Error()})
		return
	}

	connected, err := h.oauthUsecase.IsConnected(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, oauthdto.StatusResponse{Connected: connected})
}
