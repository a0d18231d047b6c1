package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/RaffleRate_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for every event clients can see.
// Skipped renders stay internal.
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.SimulationStarted, s.handleSimulationStarted)
	s.bus.Subscribe(event.SimulationRejected, s.handleSimulationRejected)
	s.bus.Subscribe(event.FrameRendered, s.handleFrameRendered)
	s.bus.Subscribe(event.RevealCompleted, s.handleRevealCompleted)
	s.bus.Subscribe(event.SpeedChanged, s.handleSpeedChanged)

	slog.Info(LogMsgSubscriberReady,
		"types", []string{
			string(event.SimulationStarted),
			string(event.SimulationRejected),
			string(event.FrameRendered),
			string(event.RevealCompleted),
			string(event.SpeedChanged),
		})
}

func (s *Subscriber) handleSimulationStarted(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.SimulationStartedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeRunStarted, RunStartedPayload{
		RunID:         payload.RunID,
		TicketsBought: payload.TicketsBought,
		TotalTickets:  payload.TotalTickets,
		NumDraws:      payload.NumDraws,
		MaxTick:       payload.MaxTick,
		Probability:   payload.Probability,
	})
	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeRunStarted, "run_id", payload.RunID)
	return nil
}

func (s *Subscriber) handleSimulationRejected(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.SimulationRejectedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeRunRejected, RunRejectedPayload{Fields: payload.Fields})
	return nil
}

func (s *Subscriber) handleFrameRendered(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.FrameRenderedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeFrame, payload.Frame)
	return nil
}

func (s *Subscriber) handleRevealCompleted(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.RevealCompletedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeRevealCompleted, RevealCompletedPayload{
		RunID:   payload.RunID,
		MaxTick: payload.MaxTick,
	})
	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeRevealCompleted, "run_id", payload.RunID)
	return nil
}

func (s *Subscriber) handleSpeedChanged(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.SpeedChangedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeSpeedChanged, SpeedChangedPayload{
		Speed:      payload.Speed,
		IntervalMS: payload.IntervalMS,
	})
	return nil
}
