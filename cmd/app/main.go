package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/WheelOfFortune_Go/internal/bootstrap"
	"github.com/osse101/WheelOfFortune_Go/internal/config"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
	"github.com/osse101/WheelOfFortune_Go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		logger.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		// a bare environment is fine for local play, not for a deployment
		if cfg.Environment == "prod" || cfg.Environment == "production" {
			logger.Error("Environment validation failed", "error", err)
			os.Exit(1)
		}
		logger.Warn("Environment validation failed", "error", err)
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	ctx := context.Background()

	content, err := bootstrap.LoadContent(ctx, cfg)
	if err != nil {
		logger.Error("Failed to load game content", "error", err)
		os.Exit(1)
	}

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	events := bootstrap.InitializeEventSystem()
	handlers, err := bootstrap.RegisterEventHandlers(events.Bus, events.Hub)
	if err != nil {
		logger.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	components := bootstrap.BuildGame(ctx, cfg, content, storage.Progress, events.Bus)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		MaxZone:        content.Game.Zones.MaxZone,
	}, server.Dependencies{
		Game:  components.Session,
		Items: content.Catalog,
		Zones: components.Resolver,
		Store: storage.Progress,
		Hub:   events.Hub,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.DefaultShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:   srv,
		Game:     components,
		Handlers: handlers,
		Events:   events,
		Storage:  storage,
	})
}
