package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/internship-matcher/internal/config"
	"github.com/jonathan/internship-matcher/internal/db"
	"github.com/jonathan/internship-matcher/internal/repository"
	"github.com/jonathan/internship-matcher/internal/sqlite"
)

// openStore opens and migrates the repository selected by cfg.Driver.
func openStore(ctx context.Context, cfg config.Config) (repository.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		log.Printf("[store] Using in-memory store; data is lost on exit")
		return repository.NewMemoryStore(), nil

	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Printf("[store] Using SQLite at %s", cfg.SQLitePath)
		return store, nil

	case config.DriverPostgres:
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx); err != nil {
			_ = database.Close()
			return nil, err
		}
		log.Printf("[store] Using PostgreSQL")
		return database, nil

	default:
		return nil, fmt.Errorf("unknown driver %q", cfg.Driver)
	}
}
