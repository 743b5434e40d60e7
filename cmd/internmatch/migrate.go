package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/internship-matcher/internal/config"
	"github.com/spf13/cobra"
)

var (
	migrateConfig string
	migrateDriver string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	Long:  "Applies the schema for the configured SQL driver (sqlite or postgres). Migrations are idempotent.",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateConfig, "config", "c", "", "Path to JSON config file")
	migrateCmd.Flags().StringVar(&migrateDriver, "driver", "", "Storage driver: sqlite or postgres (overrides config)")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(migrateConfig)
	if err != nil {
		return err
	}
	if migrateDriver != "" {
		cfg.Driver = migrateDriver
	}
	// The catalog is not needed to migrate
	cfg.CatalogPath = ""
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Driver == config.DriverMemory {
		return fmt.Errorf("nothing to migrate for the %s driver", config.DriverMemory)
	}

	// openStore applies the schema on open
	store, err := openStore(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	defer func() { _ = store.Close() }()

	_, _ = fmt.Fprintf(os.Stdout, "Migration complete (%s)\n", cfg.Driver)
	return nil
}
