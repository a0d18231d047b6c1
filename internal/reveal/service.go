// Package reveal turns a simulated draw series into animation frames, one
// additional draw per tick, and owns the state of the current run.
package reveal

import (
	"context"
	"errors"

	"github.com/osse101/RaffleRate_Go/internal/chart"
	"github.com/osse101/RaffleRate_Go/internal/raffle"
)

var (
	// ErrAdapterStopped is returned once Shutdown has been called
	ErrAdapterStopped = errors.New("reveal adapter stopped")
	// ErrInvalidSpeed is returned for a non-positive speed
	ErrInvalidSpeed = errors.New("speed must be positive")
	// ErrTickNotRevealed is returned when asking for a frame ahead of the reveal
	ErrTickNotRevealed = errors.New("tick not revealed yet")
)

// Service is what the transports (HTTP, gRPC, SSE) need from the reveal
type Service interface {
	Draw(ctx context.Context, in raffle.Input) (RunSummary, error)
	SetSpeed(ctx context.Context, speed float64) error
	Frame() chart.Frame
	FrameAt(tick int) (chart.Frame, error)
	State() Snapshot
	CheckHealth(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// State is the reveal position of the current run
type State struct {
	CurrentTick int     `json:"current_tick"`
	MaxTick     int     `json:"max_tick"`
	Speed       float64 `json:"speed"`
}

// Done reports whether the terminal tick has been reached
func (s State) Done() bool {
	return s.MaxTick > 0 && s.CurrentTick >= s.MaxTick
}

// RunSummary describes a started run. The series itself is revealed through frames.
type RunSummary struct {
	RunID        string       `json:"run_id"`
	Input        raffle.Input `json:"input"`
	Wins         int          `json:"wins"`
	Probability  float64      `json:"probability"`
	FinalWinRate float64      `json:"final_win_rate"`
	MaxTick      int          `json:"max_tick"`
}

// Snapshot is a consistent copy of the adapter's published outputs
type Snapshot struct {
	State         State             `json:"state"`
	Run           *RunSummary       `json:"run,omitempty"`
	InvalidFields map[string]string `json:"invalid_fields,omitempty"`
}
