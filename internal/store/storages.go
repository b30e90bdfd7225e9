package store

import (
	"context"

	"github.com/kinoteka/kinoteka/internal/config"
	"github.com/kinoteka/kinoteka/internal/logger"
)

// Storages aggregates all repositories backed by the shared database
// connection.
type Storages struct {
	UserRepository  UserRepository
	MovieRepository MovieRepository

	// DB is exposed for lifecycle management (migrations, Close on
	// shutdown).
	DB *DB
}

// NewStorages connects to PostgreSQL and wires every repository to the
// shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		MovieRepository: NewMovieRepository(db, cfg.DB, log),
		DB:              db,
	}, nil
}
