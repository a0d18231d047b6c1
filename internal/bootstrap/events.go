package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/RaffleRate_Go/internal/event"
	"github.com/osse101/RaffleRate_Go/internal/metrics"
	"github.com/osse101/RaffleRate_Go/internal/sse"
)

// InitializeEventSystem creates the event bus and attaches its consumers:
// the metrics collector and the SSE subscriber feeding a started hub.
// The caller stops the hub on shutdown.
func InitializeEventSystem() (event.Bus, *sse.Hub, error) {
	bus := event.NewMemoryBus()

	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	slog.Info(LogMsgEventSystemInitialized)
	return bus, hub, nil
}
