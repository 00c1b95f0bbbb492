package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-sealed-table/internal/adapter"
	"github.com/MKhiriev/go-sealed-table/internal/client"
	"github.com/MKhiriev/go-sealed-table/internal/config"
	"github.com/MKhiriev/go-sealed-table/internal/crypto"
	"github.com/MKhiriev/go-sealed-table/internal/logger"
	"github.com/MKhiriev/go-sealed-table/internal/service"
	"github.com/MKhiriev/go-sealed-table/internal/store"
	"github.com/MKhiriev/go-sealed-table/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n%s", err, client.Usage)
		return 2
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewCLILogger("sealed-table-client", cfg.App.LogLevel)
	log.Debug().
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_commit", buildInfo.BuildCommit()).
		Bool("remote", cfg.Remote()).
		Msg("client starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		backend client.Backend
		local   *client.LocalDatabases
	)

	if cfg.Remote() {
		backend, err = adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
		if err != nil {
			log.Error().Err(err).Msg("create server adapter")
			return 1
		}
	} else {
		storages, err := store.NewStorages(ctx, cfg.Storage, log)
		if err != nil {
			log.Error().Err(err).Msg("create storages")
			return 1
		}
		defer storages.Close()

		// one CLI run may decrypt several envelopes under the same password
		keyCache := crypto.NewKeyCache(crypto.NewEnvelopeService(), &sync.Mutex{})
		defer keyCache.Purge()

		services, err := service.NewServices(storages, keyCache, cfg.App, log)
		if err != nil {
			log.Error().Err(err).Msg("create services")
			return 1
		}

		backend = client.NewLocalBackend(services)
		local = &client.LocalDatabases{Source: storages.Source, Sink: storages.Sink}
	}

	app := client.NewApp(backend, local, client.NewPasswordSource(os.Stdin, os.Stderr), log)
	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, client.ErrUnknownCommand) {
			return 2
		}
		return 1
	}

	return 0
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
