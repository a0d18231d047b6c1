package grpcapi

// Service and method names
const (
	ServiceName = "raffle.v1.RaffleService"

	FullMethodDraw     = "/" + ServiceName + "/Draw"
	FullMethodSetSpeed = "/" + ServiceName + "/SetSpeed"
	FullMethodGetFrame = "/" + ServiceName + "/GetFrame"
	FullMethodWatch    = "/" + ServiceName + "/Watch"
)

// Request fields
const (
	FieldSpeed = "speed"
	FieldTick  = "tick"
)

// Error messages
const (
	ErrMsgInvalidRequest = "invalid request"
	ErrMsgInvalidTick    = "tick must be a whole number"
)

// Log messages
const (
	LogMsgServerStarting = "gRPC server starting"
	LogMsgServerStopped  = "gRPC server stopped"
	LogMsgWatchStarted   = "Watch stream started"
	LogMsgWatchEnded     = "Watch stream ended"
	LogMsgConvertFailed  = "Failed to convert frame"
)
