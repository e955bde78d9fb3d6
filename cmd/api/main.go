package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/mikiasgoitom/SuppliersEgypt/internal/handler/http"
	redisclient "github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/cache"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/config"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/jobs"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/logger"
	randomgenerator "github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/store"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/validator"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if err := appConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger, err := logger.NewZapLogger(appConfig.Env, appConfig.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Dependency Injection: Repositories
	repos, err := buildRepositories(ctx, appConfig, appLogger)
	if err != nil {
		appLogger.Fatalf("Failed to set up %s store: %v", appConfig.StoreBackend, err)
	}
	defer repos.close()

	// Dependency Injection: Services
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret, appConfig.AccessTokenExpiry, appConfig.RefreshTokenExpiry)
	jwtService := jwt.NewJWTService(jwtManager)
	randomGenerator := randomgenerator.NewRandomGenerator()
	uuidGenerator := uuidgen.NewGenerator()
	appValidator := validator.NewValidator()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Usecases
	locationUsecase := usecase.NewLocationUseCase(repos.cities, appLogger)
	supplierUsecase := usecase.NewSupplierUseCase(repos.suppliers, repos.settings, locationUsecase, appValidator, uuidGenerator, appLogger)
	authUsecase := usecase.NewAuthUseCase(repos.users, repos.settings, jwtService, appValidator, uuidGenerator, appLogger, appConfig)
	userUsecase := usecase.NewUserUsecase(repos.users, appLogger, appValidator)
	adminUsecase := usecase.NewAdminUseCase(repos.categories, repos.settings, repos.suppliers, repos.users, appLogger)

	if mailService := buildMailer(appConfig); mailService != nil {
		authUsecase.SetMailService(mailService)
	}

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, appConfig.RedisURL)
		if err != nil {
			appLogger.Warnf("Redis unavailable, serving without cache: %v", err)
		} else {
			defer redisclient.Close(rdb)
			supplierUsecase.SetSupplierCache(store.NewSupplierCacheStore(rdb))
		}
	}

	for _, email := range appConfig.SeedAdminEmails {
		if _, err := authUsecase.ProvisionAdmin(ctx, email, ""); err != nil {
			appLogger.Errorf("Failed to provision admin %s: %v", email, err)
		}
	}

	// Background jobs
	scheduler, err := jobs.NewScheduler(
		jobs.NewJobRunner(supplierUsecase, adminUsecase, appLogger),
		appConfig.CacheWarmSchedule, appConfig.StatsSchedule,
	)
	if err != nil {
		appLogger.Fatalf("Failed to schedule jobs: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize Gin router
	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		supplierUsecase, authUsecase, userUsecase, adminUsecase, locationUsecase,
		randomGenerator, appConfig, appLogger.Zap(),
	)
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start the server
	go func() {
		appLogger.Infof("Server running on port %s (store=%s)", appConfig.Port, appConfig.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Infof("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Graceful shutdown failed: %v", err)
	}
}
