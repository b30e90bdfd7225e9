package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kinoteka/kinoteka/internal/config"
	"github.com/kinoteka/kinoteka/internal/graph"
	handlerhttp "github.com/kinoteka/kinoteka/internal/handler/http"
	"github.com/kinoteka/kinoteka/internal/logger"
	"github.com/kinoteka/kinoteka/internal/server"
	"github.com/kinoteka/kinoteka/internal/service"
	"github.com/kinoteka/kinoteka/internal/store"
	"github.com/kinoteka/kinoteka/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env is fine, the process environment still applies
	_ = godotenv.Load()

	log := logger.NewLogger("kinoteka-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	if err := migrations.Migrate(storages.DB.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services := service.NewServices(*storages, *cfg, log)

	schema, err := graph.NewSchema(graph.NewResolver(services, log))
	if err != nil {
		log.Fatal().Err(err).Msg("error building graphql schema")
	}

	handlers := handlerhttp.NewHandler(schema, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
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
