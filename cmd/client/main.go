package main

import (
	"fmt"

	"github.com/MKhiriev/go-depth-capture/internal/adapter"
	"github.com/MKhiriev/go-depth-capture/internal/camera"
	"github.com/MKhiriev/go-depth-capture/internal/client"
	"github.com/MKhiriev/go-depth-capture/internal/config"
	"github.com/MKhiriev/go-depth-capture/internal/logger"
	"github.com/MKhiriev/go-depth-capture/internal/service"
	"github.com/MKhiriev/go-depth-capture/internal/store"
	"github.com/MKhiriev/go-depth-capture/internal/tui"
	"github.com/MKhiriev/go-depth-capture/models"
)

const role = "depth-capture-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger(role).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(role, cfg.App.LogFile).WithLevel(cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	session, err := camera.New(cfg.Camera, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create capture session")
	}

	uploader := adapter.NewHTTPUploadClient(cfg.Adapter, log)
	storages := store.NewClientStorages(cfg.Storage, log)
	services := service.NewClientServices(session, uploader, storages, cfg.Adapter, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, session, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
