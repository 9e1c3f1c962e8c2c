package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	config "relief-coordination.com/relief-coordination/internal/configs"
	repository "relief-coordination.com/relief-coordination/internal/repositories"
	"relief-coordination.com/relief-coordination/internal/services"
	model "relief-coordination.com/relief-coordination/pkg/models"
)

// Store is everything the commands need from a storage backend.
type Store interface {
	services.TaskStore
	CreateUser(ctx context.Context, user *model.User) error
}

func loadConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}
	return config.Load()
}

// openStore connects the backend selected by STORE_DRIVER. The returned
// function releases it.
func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (Store, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, err := config.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewMongoTaskRepository(client.Database(cfg.MongoDatabase))
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("mongo indexes: %w", err)
		}
		logger.Info("using mongo store", zap.String("database", cfg.MongoDatabase))
		return repo, func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Warn("failed to disconnect mongo", zap.Error(err))
			}
		}, nil

	default:
		db, err := config.NewDatabaseClient(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using sqlite store", zap.String("dsn", cfg.DatabaseDSN))
		return repository.NewTaskRepository(db), func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}, nil
	}
}
