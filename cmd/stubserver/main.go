package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-doc-chat/internal/config"
	"github.com/MKhiriev/go-doc-chat/internal/handler"
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/server"
	"github.com/MKhiriev/go-doc-chat/internal/service"
	"github.com/MKhiriev/go-doc-chat/internal/store"
	"github.com/MKhiriev/go-doc-chat/internal/workers"
)

func main() {
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-doc-chat-stubserver").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewServerLogger("go-doc-chat-stubserver", cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages := store.NewServerStorages(log)
	services := service.NewServerServices(storages, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server")
	}

	background := workers.NewWorkers(workers.NewSessionJanitor(services.Index, cfg.Server, log))

	var wg sync.WaitGroup
	wg.Go(func() {
		background.Run(ctx)
	})

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server run error")
		stop()
		wg.Wait()
		os.Exit(1)
	}
	wg.Wait()
}
