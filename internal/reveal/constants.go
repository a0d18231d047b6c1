package reveal

import (
	"time"

	"github.com/osse101/RaffleRate_Go/internal/ticker"
)

// percentPlaces is the number of decimals shown in percentage texts
const percentPlaces = 2

// Adapter defaults
const (
	DefaultSpeed     = ticker.DefaultSpeed
	DefaultCacheSize = 128
	DefaultCacheTTL  = 10 * time.Minute

	// inboxSize bounds queued messages; intermediate ticks are dropped when it is full
	inboxSize = 64
)

// Log messages
const (
	LogMsgSimulationStarted  = "Simulation started"
	LogMsgSimulationRejected = "Simulation rejected"
	LogMsgRenderSkipped      = "Skipping frame render"
	LogMsgRevealCompleted    = "Reveal completed"
	LogMsgSpeedChanged       = "Reveal speed changed"
	LogMsgTickDropped        = "Dropping tick, inbox full"
	LogMsgStaleTick          = "Discarding tick of replaced run"
	LogMsgPublishFailed      = "Failed to publish reveal event"
	LogMsgAdapterStopped     = "Reveal adapter stopped"
)

// Span names
const (
	SpanSimulate = "raffle.simulate"
)
