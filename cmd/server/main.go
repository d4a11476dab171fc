package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pinvent/internal/adapter"
	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/handler"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/metrics"
	"github.com/MKhiriev/pinvent/internal/server"
	"github.com/MKhiriev/pinvent/internal/service"
	"github.com/MKhiriev/pinvent/internal/store"
	"github.com/MKhiriev/pinvent/internal/workers"
	"github.com/MKhiriev/pinvent/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pinvent-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetEnvironment(cfg.Server.IsDevelopment())

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	adapters, err := adapter.NewAdapters(ctx, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}

	appMetrics := metrics.New()

	services, err := service.NewServices(storages, adapters, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, appMetrics, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(storages, appMetrics, cfg.Workers, log)
	workersDone := make(chan struct{})
	go func() {
		backgroundWorkers.Run(ctx)
		close(workersDone)
	}()

	// blocks until a stop signal
	srv.RunServer()

	cancel()
	<-workersDone
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
