package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/linkdir/internal/adapter"
	"github.com/MKhiriev/linkdir/internal/client"
	"github.com/MKhiriev/linkdir/internal/config"
	"github.com/MKhiriev/linkdir/internal/logger"
	"github.com/MKhiriev/linkdir/internal/service"
	"github.com/MKhiriev/linkdir/internal/store"
	"github.com/MKhiriev/linkdir/internal/tui"
	"github.com/MKhiriev/linkdir/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.New(os.Stderr, "linkdir", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("linkdir", cfg.Log.File, cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, adapter.NewSystemClipboard(), adapter.NewOSFileSystem(), cfg, log)

	ui, err := tui.New(services, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, storages, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Println(info.String())
}
