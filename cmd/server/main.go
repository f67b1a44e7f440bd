package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/mkarpenko/gonotes/internal/adapter"
	"github.com/mkarpenko/gonotes/internal/config"
	"github.com/mkarpenko/gonotes/internal/handler"
	"github.com/mkarpenko/gonotes/internal/logger"
	"github.com/mkarpenko/gonotes/internal/server"
	"github.com/mkarpenko/gonotes/internal/service"
	"github.com/mkarpenko/gonotes/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// Missing .env is fine, settings may come from the environment.
	_ = godotenv.Load()

	log := logger.NewLogger("gonotes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	generator, err := adapter.NewGenerationClient(cfg.Generation, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating generation client")
	}

	services := service.NewServices(*storages, generator, log)
	handlers := handler.NewHandlers(services, log)

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
