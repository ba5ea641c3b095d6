package api

import (
	"net/http"

	adminDelivery "creatortube-backend/internal/admin/delivery"
	adminUsecasePkg "creatortube-backend/internal/admin/usecase"
	"creatortube-backend/internal/auth/delivery"
	authUsecasePkg "creatortube-backend/internal/auth/usecase"
	oauthDelivery "creatortube-backend/internal/oauth/delivery"
	oauthUsecasePkg "creatortube-backend/internal/oauth/usecase"
	userDelivery "creatortube-backend/internal/user/delivery"
	userUsecasePkg "creatortube-backend/internal/user/usecase"
	youtubeDelivery "creatortube-backend/internal/youtube/delivery"
	youtubeUsecasePkg "creatortube-backend/internal/youtube/usecase"
	"creatortube-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecasePkg.AuthUsecase, oauthUsecase oauthUsecasePkg.OAuthUsecase, userUsecase userUsecasePkg.UserUsecase, adminUsecase adminUsecasePkg.AdminUsecase, youtubeUsecase youtubeUsecasePkg.YouTubeUsecase, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUsecase)
	oauthHandler := oauthDelivery.NewOAuthHandler(oauthUsecase, cfg)
	userHandler := userDelivery.NewUserHandler(userUsecase)
	adminHandler := adminDelivery.NewAdminHandler(adminUsecase)
	youtubeHandler := youtubeDelivery.NewYouTubeHandler(youtubeUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUsecase), authHandler.Me)
		}

		// Google OAuth routes; the redirect pair is public because Google
		// calls back without our bearer token
		oauth := api.Group("/oauth")
		{
			oauth.GET("/google", oauthHandler.ConnectGoogle)
			oauth.GET("/google/callback", oauthHandler.HandleCallback)
			oauth.POST("/associate", delivery.AuthMiddleware(authUsecase), oauthHandler.Associate)
			oauth.GET("/status", delivery.AuthMiddleware(authUsecase), oauthHandler.Status)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(delivery.AuthMiddleware(authUsecase))
		{
			users.GET("/:id", userHandler.GetUser)
			users.GET("/:id/previous", userHandler.GetPreviousData)
			users.POST("/:id/data", userHandler.InsertData)
			users.GET("/:id/comments", userHandler.GetCommentsData)
		}

		// Admin routes (protected, admin role only)
		admin := api.Group("/admin")
		admin.Use(delivery.AuthMiddleware(authUsecase), delivery.AdminMiddleware())
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/users/:id", adminHandler.GetUser)
		}

		// YouTube routes (protected)
		youtube := api.Group("/youtube")
		youtube.Use(delivery.AuthMiddleware(authUsecase))
		{
			youtube.POST("/channel-id", youtubeHandler.GetChannelID)
			youtube.POST("/channel-data", youtubeHandler.GetChannelData)
			youtube.POST("/video-id", youtubeHandler.GetVideoID)
			youtube.POST("/video-data", youtubeHandler.GetVideoData)
			youtube.POST("/comments", youtubeHandler.AutoReplyComments)
			youtube.POST("/llm-reply", youtubeHandler.GenerateLLMReply)
			youtube.GET("/channels", youtubeHandler.ListMyChannels)
			youtube.GET("/oauth-status", oauthHandler.Status)
			youtube.POST("/analyze-channel", youtubeHandler.AnalyzeChannel)
		}
	}
}
