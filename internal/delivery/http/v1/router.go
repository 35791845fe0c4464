package v1

import (
	"net/http"
	"time"

	"initiative-discovery-backend/config"
	"initiative-discovery-backend/internal/delivery/http/middleware"
	"initiative-discovery-backend/internal/delivery/http/response"
	"initiative-discovery-backend/internal/domain"
	"initiative-discovery-backend/pkg/token"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC           domain.AuthUsecase
	UserUC           domain.UserUsecase
	InitiativeUC     domain.InitiativeUsecase
	EngagementUC     domain.EngagementUsecase
	RecommendationUC domain.RecommendationUsecase
	UserRepo         domain.UserRepository
	Tokens           *token.Manager
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimit(
		deps.Config.LoginRateLimitThreshold,
		time.Duration(deps.Config.LoginRateLimitWindowSeconds)*time.Second,
	)

	// Public routes
	NewAuthHandler(v1, deps.AuthUC, loginLimiter)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.UserRepo))
	{
		NewUserHandler(protected, deps.UserUC)
		NewInitiativeHandler(protected, deps.InitiativeUC)
		NewSearchHandler(protected, deps.InitiativeUC)
		NewRecommendationHandler(protected, deps.RecommendationUC)
		NewEngagementHandler(protected, deps.EngagementUC)
	}

	return r
}
