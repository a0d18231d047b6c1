package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/RaffleRate_Go/internal/grpcapi"
	"github.com/osse101/RaffleRate_Go/internal/reveal"
	"github.com/osse101/RaffleRate_Go/internal/server"
	"github.com/osse101/RaffleRate_Go/internal/sse"
	"github.com/osse101/RaffleRate_Go/internal/telemetry"
	"github.com/osse101/RaffleRate_Go/internal/ticker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil components are skipped.
type ShutdownComponents struct {
	Ticker    *ticker.Ticker
	Hub       *sse.Hub
	Server    *server.Server
	GRPC      *grpcapi.Server
	Adapter   *reveal.Adapter
	Telemetry telemetry.ShutdownFunc
}

// GracefulShutdown stops the application in order:
// 1. Ticker (no more reveal steps)
// 2. SSE hub (ends open event streams and Watch calls)
// 3. HTTP and gRPC servers (drain in-flight requests)
// 4. Adapter (run loop exits)
// 5. Telemetry (flush spans)
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Ticker != nil {
		c.Ticker.Stop()
	}
	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}
	if c.GRPC != nil {
		if err := c.GRPC.Stop(ctx); err != nil {
			slog.Error(LogMsgGRPCForcedShutdown, "error", err)
		}
	}

	if c.Adapter != nil {
		shutdownService(ctx, ServiceNameReveal, c.Adapter)
	}

	if c.Telemetry != nil {
		if err := c.Telemetry(ctx); err != nil {
			slog.Error(LogMsgTelemetryShutdownFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
