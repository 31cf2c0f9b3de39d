package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
)

// Storages aggregates the open database and the repositories built on it.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	PostRepository PostRepository
}

// NewStorages opens the configured database, applies migrations and wires
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
