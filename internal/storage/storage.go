// Package storage provides the durable key-value store that mirrors the
// calculator's form state between sessions.
package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Store is a string-keyed, string-valued store. Writes overwrite; there is
// no versioning.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Clear removes every key.
	Clear(ctx context.Context) error
	Close() error
}

// Supported drivers.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Options selects and configures a backend.
type Options struct {
	Driver string
	// Path is the database file for the sqlite driver.
	Path string
	// OpenRetries bounds how many times a locked database is retried.
	OpenRetries uint
}

// Open creates the store described by opts.
func Open(ctx context.Context, opts Options, logger *zap.Logger) (Store, error) {
	switch opts.Driver {
	case DriverSQLite, "":
		return NewSQLiteStore(ctx, opts.Path, opts.OpenRetries, logger)
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
