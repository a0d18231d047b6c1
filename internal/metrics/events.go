package metrics

import (
	"context"

	"github.com/osse101/RaffleRate_Go/internal/event"
	"github.com/osse101/RaffleRate_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every reveal event type
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.SimulationStarted:
		payload, err := event.DecodePayload[event.SimulationStartedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		SimulationsStarted.Inc()
		DrawsSimulated.Add(float64(payload.NumDraws))
		WinsObserved.Add(float64(payload.Wins))

	case event.SimulationRejected:
		payload, err := event.DecodePayload[event.SimulationRejectedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		for field := range payload.Fields {
			SimulationsRejected.WithLabelValues(field).Inc()
		}

	case event.FrameRendered:
		FramesRendered.Inc()

	case event.RenderSkipped:
		RendersSkipped.Inc()

	case event.RevealCompleted:
		RevealsCompleted.Inc()

	case event.SpeedChanged:
		payload, err := event.DecodePayload[event.SpeedChangedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		RevealSpeed.Set(payload.Speed)
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
