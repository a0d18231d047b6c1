package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/RaffleRate_Go/internal/chart"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Simulation and reveal event types
const (
	SimulationStarted  Type = "simulation.started"
	SimulationRejected Type = "simulation.rejected"
	FrameRendered      Type = "reveal.frame_rendered"
	RenderSkipped      Type = "reveal.render_skipped"
	RevealCompleted    Type = "reveal.completed"
	SpeedChanged       Type = "reveal.speed_changed"
)

// SimulationStartedPayloadV1 is the typed payload for a freshly computed run
type SimulationStartedPayloadV1 struct {
	RunID         string  `json:"run_id"`
	TicketsBought int     `json:"tickets_bought"`
	TotalTickets  int     `json:"total_tickets"`
	NumDraws      int     `json:"num_draws"`
	Wins          int     `json:"wins"`
	Probability   float64 `json:"probability"`
	FinalWinRate  float64 `json:"final_win_rate"`
	MaxTick       int     `json:"max_tick"`
	Timestamp     int64   `json:"timestamp"`
}

// SimulationRejectedPayloadV1 is the typed payload for input that failed validation
type SimulationRejectedPayloadV1 struct {
	Fields    map[string]string `json:"fields"`
	Timestamp int64             `json:"timestamp"`
}

// FrameRenderedPayloadV1 carries one revealed frame
type FrameRenderedPayloadV1 struct {
	Frame chart.Frame `json:"frame"`
}

// RenderSkippedPayloadV1 records a tick whose rendering failed and was discarded
type RenderSkippedPayloadV1 struct {
	RunID  string `json:"run_id"`
	Tick   int    `json:"tick"`
	Reason string `json:"reason"`
}

// RevealCompletedPayloadV1 is sent once the terminal tick has been rendered
type RevealCompletedPayloadV1 struct {
	RunID   string `json:"run_id"`
	MaxTick int    `json:"max_tick"`
}

// SpeedChangedPayloadV1 is sent when the reveal speed changes
type SpeedChangedPayloadV1 struct {
	Speed      float64 `json:"speed"`
	IntervalMS float64 `json:"interval_ms"`
}

// Type-safe event constructors

// NewSimulationStartedEvent creates a simulation started event
func NewSimulationStartedEvent(payload SimulationStartedPayloadV1) Event {
	if payload.Timestamp == 0 {
		payload.Timestamp = time.Now().Unix()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    SimulationStarted,
		Payload: payload,
		Metadata: map[string]interface{}{
			MetadataKeyRunID: payload.RunID,
		},
	}
}

// NewSimulationRejectedEvent creates a simulation rejected event
func NewSimulationRejectedEvent(fields map[string]string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SimulationRejected,
		Payload: SimulationRejectedPayloadV1{
			Fields:    fields,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewFrameRenderedEvent creates a frame rendered event
func NewFrameRenderedEvent(frame chart.Frame) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FrameRendered,
		Payload: FrameRenderedPayloadV1{Frame: frame},
		Metadata: map[string]interface{}{
			MetadataKeyRunID: frame.RunID,
			MetadataKeyTick:  frame.Tick,
		},
	}
}

// NewRenderSkippedEvent creates a render skipped event
func NewRenderSkippedEvent(runID string, tick int, reason error) Event {
	msg := ""
	if reason != nil {
		msg = reason.Error()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    RenderSkipped,
		Payload: RenderSkippedPayloadV1{
			RunID:  runID,
			Tick:   tick,
			Reason: msg,
		},
		Metadata: nil,
	}
}

// NewRevealCompletedEvent creates a reveal completed event
func NewRevealCompletedEvent(runID string, maxTick int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RevealCompleted,
		Payload: RevealCompletedPayloadV1{
			RunID:   runID,
			MaxTick: maxTick,
		},
		Metadata: map[string]interface{}{
			MetadataKeyRunID: runID,
		},
	}
}

// NewSpeedChangedEvent creates a speed changed event
func NewSpeedChangedEvent(speed float64, interval time.Duration) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpeedChanged,
		Payload: SpeedChangedPayloadV1{
			Speed:      speed,
			IntervalMS: float64(interval) / float64(time.Millisecond),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event type, in subscription order.
// Handlers run synchronously on the caller's goroutine and must not block.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
