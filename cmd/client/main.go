package main

import (
	"fmt"

	"github.com/avolkov/jobscout/internal/adapter"
	"github.com/avolkov/jobscout/internal/client"
	"github.com/avolkov/jobscout/internal/config"
	"github.com/avolkov/jobscout/internal/logger"
	"github.com/avolkov/jobscout/internal/service"
	"github.com/avolkov/jobscout/internal/store"
	"github.com/avolkov/jobscout/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("jobscout")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	apiClient, err := adapter.NewHTTPAPIClient(cfg.API, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, apiClient, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
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
