package main

import (
	"context"
	"time"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/config"
	database "github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/database"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/external_services"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/seed"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

type repositories struct {
	suppliers  contract.ISupplierRepository
	users      contract.IUserRepository
	categories contract.ICategoryRepository
	settings   contract.ISettingsRepository
	cities     contract.ICityRepository
	close      func()
}

// buildRepositories opens the configured backend and seeds it on first start.
func buildRepositories(ctx context.Context, cfg *config.Config, logger usecasecontract.IAppLogger) (*repositories, error) {
	ds, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, err
	}

	if cfg.StoreBackend == config.StoreMemory {
		var latency memory.Latency
		if cfg.SimulateLatency {
			latency = memory.DefaultLatency()
		}
		s := memory.NewStore(ds, latency)
		return &repositories{
			suppliers:  memory.NewSupplierRepository(s),
			users:      memory.NewUserRepository(s),
			categories: memory.NewCategoryRepository(s),
			settings:   memory.NewSettingsRepository(s),
			cities:     memory.NewCityRepository(s),
			close:      func() {},
		}, nil
	}

	client, err := database.NewMongoDBClient(cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.MongoDBName)

	setupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := mongodb.EnsureIndexes(setupCtx, db); err != nil {
		client.Disconnect()
		return nil, err
	}
	seeded, err := mongodb.SeedIfEmpty(setupCtx, db, ds)
	if err != nil {
		client.Disconnect()
		return nil, err
	}
	if len(seeded) > 0 {
		logger.Infof("Seeded collections: %v", seeded)
	}

	return &repositories{
		suppliers:  mongodb.NewSupplierRepository(db),
		users:      mongodb.NewMongoUserRepository(db.Collection("users")),
		categories: mongodb.NewCategoryRepository(db),
		settings:   mongodb.NewSettingsRepository(db),
		cities:     mongodb.NewCityRepository(db),
		close:      client.Disconnect,
	}, nil
}

// buildMailer returns nil when email is disabled.
func buildMailer(cfg *config.Config) contract.IEmailService {
	switch cfg.EmailProvider {
	case config.EmailSMTP:
		return external_services.NewEmailService(cfg.EmailHost, cfg.EmailPort, cfg.EmailUsername, cfg.EmailAppPassword, cfg.EmailFrom)
	case config.EmailSendGrid:
		return external_services.NewSendGridEmailService(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	}
	return nil
}
