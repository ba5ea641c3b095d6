package main

import (
	"log"

	api "creatortube-backend/cmd/api"
	adminUsecase "creatortube-backend/internal/admin/usecase"
	authdomain "creatortube-backend/internal/auth/domain"
	authRepo "creatortube-backend/internal/auth/repository"
	authUsecase "creatortube-backend/internal/auth/usecase"
	oauthUsecase "creatortube-backend/internal/oauth/usecase"
	userUsecase "creatortube-backend/internal/user/usecase"
	youtubeUsecase "creatortube-backend/internal/youtube/usecase"
	"creatortube-backend/pkg/ai"
	"creatortube-backend/pkg/config"
	"creatortube-backend/pkg/database"
	"creatortube-backend/pkg/googleoauth"
	"creatortube-backend/pkg/youtube"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)

	// Initialize Google OAuth manager
	oauthManager := googleoauth.NewManager(googleoauth.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURI:  cfg.GoogleRedirectURI,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
			"https://www.googleapis.com/auth/youtube.readonly",
			"https://www.googleapis.com/auth/youtube.force-ssl",
		},
		Timeout: cfg.OAuthTimeout,
	})

	// Initialize YouTube client and simulated reply generator
	youtubeClient := youtube.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.YouTubeAPIKey)
	replyService := ai.NewSimulatedReplyService()

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	oauthUsecaseInstance := oauthUsecase.NewOAuthUsecase(oauthManager, userRepo)
	userUsecaseInstance := userUsecase.NewUserUsecase(userRepo)
	adminUsecaseInstance := adminUsecase.NewAdminUsecase(userRepo)
	youtubeUsecaseInstance := youtubeUsecase.NewYouTubeUsecase(userRepo, youtubeClient, replyService)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, oauthUsecaseInstance, userUsecaseInstance, adminUsecaseInstance, youtubeUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
