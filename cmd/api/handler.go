package api

import (
	adminUsecasePkg "creatortube-backend/internal/admin/usecase"
	authUsecasePkg "creatortube-backend/internal/auth/usecase"
	oauthUsecasePkg "creatortube-backend/internal/oauth/usecase"
	userUsecasePkg "creatortube-backend/internal/user/usecase"
	youtubeUsecasePkg "creatortube-backend/internal/youtube/usecase"
	"creatortube-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecasePkg.AuthUsecase
	oauthUsecase   oauthUsecasePkg.OAuthUsecase
	userUsecase    userUsecasePkg.UserUsecase
	adminUsecase   adminUsecasePkg.AdminUsecase
	youtubeUsecase youtubeUsecasePkg.YouTubeUsecase
	config         *config.Config
}

func NewHandler(authUc authUsecasePkg.AuthUsecase, oauthUc oauthUsecasePkg.OAuthUsecase, userUc userUsecasePkg.UserUsecase, adminUc adminUsecasePkg.AdminUsecase, youtubeUc youtubeUsecasePkg.YouTubeUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		oauthUsecase:   oauthUc,
		userUsecase:    userUc,
		adminUsecase:   adminUc,
		youtubeUsecase: youtubeUc,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.oauthUsecase, h.userUsecase, h.adminUsecase, h.youtubeUsecase, h.config)

	return r.Run(addr)
}
