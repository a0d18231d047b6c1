package ticker

import "time"

// DefaultInterval matches the default speed of 10 draws per second
const DefaultInterval = 100 * time.Millisecond

// Speed limits of the reveal, in draws per second
const (
	MinSpeed     = 10.0
	MaxSpeed     = 30.0
	SpeedStep    = 5.0
	DefaultSpeed = MinSpeed
)

// Log messages
const (
	LogMsgTick = "Reveal tick"
)
