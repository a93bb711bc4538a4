// Package store persists schools. Every implementation is append-only:
// records are inserted and read back in full, never updated or deleted.
package store

import (
	"context"
	"fmt"

	"github.com/kass/go-school-locator/pkg/config"
	"github.com/kass/go-school-locator/pkg/models"
)

// Store is the record store consumed by the directory service
type Store interface {
	// Insert stores a validated school and returns the assigned ID
	Insert(ctx context.Context, s models.NewSchool) (int64, error)
	// ListAll returns every school ordered by ID
	ListAll(ctx context.Context) ([]models.School, error)
	Count(ctx context.Context) (int64, error)
	// Migrate creates the schools table if it does not exist
	Migrate(ctx context.Context) error
	Close() error
}

// Error is returned when the storage layer cannot complete an operation.
// The wrapped cause is meant for operator logs, not for API clients.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// Open connects to the store selected by cfg.Driver
func Open(ctx context.Context, cfg config.DatabaseConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewPostgresStore(ctx, cfg)
	case config.DriverSQLite:
		return NewSQLiteStore(cfg.SQLitePath)
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
