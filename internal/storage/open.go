package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Miguelburitica/accounts-project/internal/config"
	interfaces "github.com/Miguelburitica/accounts-project/internal/interfaces"
	"github.com/Miguelburitica/accounts-project/internal/storage/file"
	"github.com/Miguelburitica/accounts-project/internal/storage/memory"
	"github.com/Miguelburitica/accounts-project/internal/storage/postgres"
	"github.com/Miguelburitica/accounts-project/internal/storage/sqlite"
)

// Open builds the state store selected by cfg.Driver. The returned function
// releases the store and is never nil.
func Open(ctx context.Context, cfg config.StoreConfig) (interfaces.StateStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case "memory":
		return memory.NewMemoryStateStore(), noop, nil
	case "file":
		s, err := file.NewFileStateStore(cfg.Path, file.Codec(cfg.Codec))
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case "sqlite":
		path := cfg.Path
		if filepath.Ext(path) == "" {
			path = filepath.Join(path, "ledger.db")
		}
		s, err := sqlite.Open(path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case "postgres":
		s, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
