package main

import (
	"context"
	"fmt"

	"github.com/akhetov/hybrid-analyzer/internal/adapter"
	"github.com/akhetov/hybrid-analyzer/internal/config"
	"github.com/akhetov/hybrid-analyzer/internal/handler"
	"github.com/akhetov/hybrid-analyzer/internal/logger"
	"github.com/akhetov/hybrid-analyzer/internal/server"
	"github.com/akhetov/hybrid-analyzer/internal/service"
	"github.com/akhetov/hybrid-analyzer/internal/store"
	"github.com/akhetov/hybrid-analyzer/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("hybrid-analyzer-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)

	classifier := adapter.NewZeroShotClassifier(cfg.Remote.Classifier, log)
	generator := adapter.NewGeminiGenerator(cfg.Remote.Generator, log)

	services := service.NewServices(repositories, classifier, generator, *cfg, log)

	// Warm the classification model in the background so early requests do
	// not hit the cold-start 503.
	go workers.NewWorkers(workers.NewClassifierWarmup(classifier, log)).Run()

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
