package main

import (
	"context"
	"fmt"

	"github.com/medlink-app/medlink-api/internal/config"
	handlerhttp "github.com/medlink-app/medlink-api/internal/handler/http"
	"github.com/medlink-app/medlink-api/internal/logger"
	"github.com/medlink-app/medlink-api/internal/server"
	"github.com/medlink-app/medlink-api/internal/service"
	"github.com/medlink-app/medlink-api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("medlink-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg, log)

	if err := services.AuthService.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding admin account")
	}

	handler := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
