package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-doc-chat/internal/adapter"
	"github.com/MKhiriev/go-doc-chat/internal/client"
	"github.com/MKhiriev/go-doc-chat/internal/config"
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/render"
	"github.com/MKhiriev/go-doc-chat/internal/service"
	"github.com/MKhiriev/go-doc-chat/internal/store"
	"github.com/MKhiriev/go-doc-chat/internal/tui"
	"github.com/MKhiriev/go-doc-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-doc-chat-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-doc-chat-client", cfg.Log.FilePath, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	docChatAdapter, err := adapter.NewHTTPDocChatAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create doc chat adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, docChatAdapter, cfg.App.SessionScope, log)

	renderer, err := render.New(cfg.App.RenderStyle, cfg.App.WordWrap)
	if err != nil {
		log.Warn().Err(err).Str("style", cfg.App.RenderStyle).Msg("markdown styling unavailable, using plain text")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(services, renderer, cfg.App, buildInfo, log)

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		localStorage.Close()
		os.Exit(1)
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
