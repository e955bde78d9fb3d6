package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/handler/http/middleware"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/config"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Router struct {
	supplierHandler *SupplierHandler
	authHandler     *AuthHandler
	userHandler     *UserHandler
	adminHandler    *AdminHandler
	locationHandler *LocationHandler
	authUsecase     usecasecontract.IAuthUseCase
	adminUsecase    usecasecontract.IAdminUseCase
	rateLimit       float64
	logger          *zap.Logger
}

func NewRouter(supplierUsecase usecasecontract.ISupplierUseCase, authUsecase usecasecontract.IAuthUseCase, userUsecase usecasecontract.IUserUseCase, adminUsecase usecasecontract.IAdminUseCase, locationUsecase usecasecontract.ILocationUseCase, randomGen contract.IRandomGenerator, cfg *config.Config, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	google := GoogleCredentials{ClientID: cfg.GoogleClientID, ClientSecret: cfg.GoogleClientSecret}
	return &Router{
		supplierHandler: NewSupplierHandler(supplierUsecase),
		authHandler:     NewAuthHandler(authUsecase, randomGen, cfg.GetAppBaseURL(), google, cfg.IsProduction()),
		userHandler:     NewUserHandler(userUsecase),
		adminHandler:    NewAdminHandler(adminUsecase),
		locationHandler: NewLocationHandler(locationUsecase),
		authUsecase:     authUsecase,
		adminUsecase:    adminUsecase,
		rateLimit:       cfg.RateLimitPerSecond,
		logger:          logger,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequestID(), middleware.RequestLogger(r.logger), middleware.Metrics())

	// rate limiter configuration
	if r.rateLimit > 0 {
		lmt := tollbooth.NewLimiter(r.rateLimit, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
		lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
		lmt.SetMessage("Too many requests, please try again later.")
		router.Use(middleware.RateLimiter(lmt))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.MaintenanceGuard(r.adminUsecase, r.authUsecase, "/api/v1/auth", "/api/v1/settings"))

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/refresh-token", r.authHandler.RefreshToken)

		// Google OAuth endpoints
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	suppliers := v1.Group("/suppliers")
	{
		suppliers.GET("", r.supplierHandler.ListSuppliers)
		suppliers.GET("/suggest", r.supplierHandler.SuggestSuppliers)
		suppliers.GET("/:id", r.supplierHandler.GetSupplier)
	}
	v1.GET("/categories", r.adminHandler.ListCategories)
	v1.GET("/cities", r.locationHandler.ListCities)
	v1.GET("/cities/resolve-region", r.locationHandler.ResolveRegion)
	v1.GET("/settings", r.adminHandler.GetSettings)
	v1.POST("/maps/parse", r.locationHandler.ParseMapURL)

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.authUsecase))
	{
		protected.GET("/me", r.userHandler.GetCurrentUser)
		protected.PUT("/me", r.userHandler.UpdateCurrentUser)

		protected.POST("/suppliers/:id/reviews", r.supplierHandler.SubmitReview)
		protected.POST("/suppliers/proposals", r.supplierHandler.ProposeSupplier)
	}

	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleWare(r.authUsecase), middleware.AdminOnly())
	{
		admin.PUT("/suppliers", r.supplierHandler.SaveSupplier)
		admin.DELETE("/suppliers/:id", r.supplierHandler.DeleteSupplier)

		admin.GET("/users", r.userHandler.ListUsers)
		admin.GET("/users/:id", r.userHandler.GetUser)
		admin.PUT("/users/:id", r.userHandler.UpdateUser)
		admin.PATCH("/users/:id/status", r.userHandler.UpdateUserStatus)
		admin.DELETE("/users/:id", r.userHandler.DeleteUser)

		admin.POST("/categories", r.adminHandler.AddCategory)
		admin.DELETE("/categories/:name", r.adminHandler.RemoveCategory)
		admin.PUT("/settings", r.adminHandler.UpdateSettings)

		admin.POST("/cities", r.locationHandler.AddCity)
		admin.POST("/cities/:city/regions", r.locationHandler.AddRegion)

		admin.GET("/stats", r.adminHandler.GetStats)
	}
}
