// Command create-admin creates an admin account, or promotes an existing
// one, in the MongoDB store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/config"
	database "github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/database"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/logger"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/validator"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/usecase"
)

func main() {
	email := flag.String("email", "", "admin email address (required)")
	name := flag.String("name", "", "display name")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.NewConfig()
	if cfg.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}

	appLogger, err := logger.NewZapLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	client, err := database.NewMongoDBClient(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect()
	db := client.Database(cfg.MongoDBName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	// only ProvisionAdmin runs, so token settings just need to be well formed
	jwtService := jwt.NewJWTService(jwt.NewJWTManager(cfg.JWTSecret, cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry))
	authUsecase := usecase.NewAuthUseCase(
		mongodb.NewMongoUserRepository(db.Collection("users")),
		mongodb.NewSettingsRepository(db),
		jwtService,
		validator.NewValidator(),
		uuidgen.NewGenerator(),
		appLogger,
		cfg,
	)

	user, err := authUsecase.ProvisionAdmin(ctx, *email, *name)
	if err != nil {
		log.Fatalf("Failed to provision admin: %v", err)
	}
	fmt.Printf("admin ready: %s <%s> (id %s)\n", user.Name, user.Email, user.ID)
}
