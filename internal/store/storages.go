package store

import (
	"context"

	"github.com/medlink-app/medlink-api/internal/config"
	"github.com/medlink-app/medlink-api/internal/logger"
)

// Storages aggregates the persistence backends handed to the service layer.
type Storages struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
}

// NewStorages selects and initializes the persistence backend.
//
// An empty database DSN selects the in-memory store; a non-empty DSN opens a
// PostgreSQL connection and applies the embedded migrations before the
// repositories are handed out.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("no database DSN provided, using in-memory store")
		return &Storages{
			UserRepository:    NewMemoryUserRepository(log),
			ProfileRepository: NewMemoryProfileRepository(log),
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProfileRepository: NewProfileRepository(db, log),
	}, nil
}
