package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/analysis"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/catalog"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/config"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/logger"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/server"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the gap analysis and ATS score endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	db, err := store.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	var vacancies store.VacancyGetter = db
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		vacancies = store.NewCachedVacancyStore(db, client, cfg.VacancyTTL, log)
	}

	boundary := store.NewResilient(db, vacancies, cfg.FetchTimeout, log)
	analyzer := analysis.New(boundary, boundary, cat, log, nil)

	srv := server.New(server.Config{Port: cfg.Port}, analyzer, boundary, log)
	return srv.Start()
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}
