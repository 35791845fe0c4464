package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"initiative-discovery-backend/config"
	_ "initiative-discovery-backend/docs" // Important for Swagger
	v1 "initiative-discovery-backend/internal/delivery/http/v1"
	"initiative-discovery-backend/internal/repository/postgres"
	"initiative-discovery-backend/internal/usecase"
	"initiative-discovery-backend/pkg/database"
	"initiative-discovery-backend/pkg/logger"
	"initiative-discovery-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// @title           Initiative Discovery API
// @version         1.0
// @description     Backend for the initiative discovery platform using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting initiative discovery backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	initiativeRepo := postgres.NewInitiativeRepository(dbPool)
	engagementRepo := postgres.NewEngagementRepository(dbPool)

	// 5. Setup Token Manager
	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenExpireMinutes)*time.Minute)

	// 6. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	userUC := usecase.NewUserUsecase(userRepo, validate)
	initiativeUC := usecase.NewInitiativeUsecase(initiativeRepo, engagementRepo, validate)
	engagementUC := usecase.NewEngagementUsecase(engagementRepo, initiativeRepo)
	recommendationUC := usecase.NewRecommendationUsecase(userRepo, initiativeRepo)

	// 7. Setup Router
	gin.SetMode(cfg.GinMode)
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:           authUC,
		UserUC:           userUC,
		InitiativeUC:     initiativeUC,
		EngagementUC:     engagementUC,
		RecommendationUC: recommendationUC,
		UserRepo:         userRepo,
		Tokens:           tokens,
		Config:           cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exited")
}
