package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/RaffleRate_Go/internal/bootstrap"
	"github.com/osse101/RaffleRate_Go/internal/config"
	"github.com/osse101/RaffleRate_Go/internal/grpcapi"
	"github.com/osse101/RaffleRate_Go/internal/server"
	"github.com/osse101/RaffleRate_Go/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bootstrap.SetupLogger(cfg)
	for _, warning := range cfg.Warnings() {
		slog.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.OTELEnabled,
		Endpoint:    cfg.OTELEndpoint,
		Insecure:    cfg.OTELInsecure,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
	})
	if err != nil {
		slog.Error("Failed to set up tracing", "error", err)
		os.Exit(1)
	}

	bus, hub, err := bootstrap.InitializeEventSystem()
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	presetLoader := bootstrap.LoadPresets(cfg)
	tk, adapter := bootstrap.InitializeReveal(cfg, clockwork.NewRealClock(), bus)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		AdminAPIKey:    cfg.AdminAPIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		Reveal:         adapter,
		Presets:        presetLoader,
		SSEHub:         hub,
	})

	grpcSrv, err := grpcapi.New(cfg.GRPCAddr(), grpcapi.NewService(adapter, hub))
	if err != nil {
		slog.Error("Failed to create gRPC server", "error", err)
		os.Exit(1)
	}

	serveErr := make(chan error, 2)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	go func() {
		if err := grpcSrv.Start(); err != nil {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Ticker:    tk,
		Hub:       hub,
		Server:    srv,
		GRPC:      grpcSrv,
		Adapter:   adapter,
		Telemetry: shutdownTelemetry,
	})
}
