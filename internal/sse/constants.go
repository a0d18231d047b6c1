package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 256

	// ClientEventBuffer is the buffer size for each client's event channel.
	// A reveal emits at most 101 frames, at up to 30 per second.
	ClientEventBuffer = 128

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeConnected is the first event every client receives
	EventTypeConnected = "connected"

	// EventTypeRunStarted is sent when a new simulation replaces the current one
	EventTypeRunStarted = "simulation.started"

	// EventTypeRunRejected is sent when a draw request fails validation
	EventTypeRunRejected = "simulation.rejected"

	// EventTypeFrame carries one revealed frame
	EventTypeFrame = "reveal.frame"

	// EventTypeRevealCompleted is sent after the terminal frame
	EventTypeRevealCompleted = "reveal.completed"

	// EventTypeSpeedChanged is sent when the reveal speed changes
	EventTypeSpeedChanged = "reveal.speed_changed"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, dropping event"
	LogMsgClientLagging      = "SSE client buffer full, skipping event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgInvalidPayload     = "Invalid event payload for SSE"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
)
