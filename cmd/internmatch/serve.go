package main

import (
	"context"
	"fmt"

	"github.com/jonathan/internship-matcher/internal/catalog"
	"github.com/jonathan/internship-matcher/internal/config"
	"github.com/jonathan/internship-matcher/internal/server"
	"github.com/jonathan/internship-matcher/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	serveConfig  string
	servePort    int
	serveDriver  string
	serveCatalog string
	servePolicy  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes candidate, recommendation, application tracker and recruiter endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveDriver, "driver", "", "Storage driver: memory, sqlite or postgres (overrides config)")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "Path to static internship catalog JSON (overrides config)")
	serveCmd.Flags().StringVar(&servePolicy, "policy", "", "Path to scoring policy YAML (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfig)
	if err != nil {
		return err
	}

	// Flags win over config file and environment
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveDriver != "" {
		cfg.Driver = serveDriver
	}
	if serveCatalog != "" {
		cfg.CatalogPath = serveCatalog
	}
	if servePolicy != "" {
		cfg.PolicyPath = servePolicy
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	policy, err := config.LoadPolicy(cfg.PolicyPath)
	if err != nil {
		return fmt.Errorf("failed to load policy: %w", err)
	}

	static, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	store, err := openStore(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	svc := tracker.NewService(store, catalog.New(static, store))
	srv := server.New(server.Config{
		Port:    cfg.Port,
		Policy:  *policy,
		Workers: cfg.Workers,
	}, svc, store)

	return srv.Start()
}
