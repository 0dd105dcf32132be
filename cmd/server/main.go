package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bloglist/internal/config"
	"github.com/MKhiriev/bloglist/internal/handler"
	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/server"
	"github.com/MKhiriev/bloglist/internal/service"
	"github.com/MKhiriev/bloglist/internal/store"
	"github.com/MKhiriev/bloglist/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("bloglist-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Str("version", cfg.App.Version).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(ctx); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
