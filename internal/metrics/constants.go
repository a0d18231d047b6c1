package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Raffle metric names
const (
	MetricNameSimulationsStarted  = "raffle_simulations_started_total"
	MetricNameSimulationsRejected = "raffle_simulations_rejected_total"
	MetricNameDrawsSimulated      = "raffle_draws_simulated_total"
	MetricNameWinsObserved        = "raffle_wins_observed_total"
	MetricNameFramesRendered      = "reveal_frames_rendered_total"
	MetricNameRendersSkipped      = "reveal_renders_skipped_total"
	MetricNameRevealsCompleted    = "reveal_completed_total"
	MetricNameRevealSpeed         = "reveal_speed_draws_per_second"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Raffle metric help text
const (
	HelpTextSimulationsStarted  = "Total number of simulations started"
	HelpTextSimulationsRejected = "Total number of draw requests rejected by validation"
	HelpTextDrawsSimulated      = "Total number of raffle draws simulated"
	HelpTextWinsObserved        = "Total number of winning draws simulated"
	HelpTextFramesRendered      = "Total number of reveal frames rendered"
	HelpTextRendersSkipped      = "Total number of reveal ticks whose rendering failed"
	HelpTextRevealsCompleted    = "Total number of reveals that reached the terminal tick"
	HelpTextRevealSpeed         = "Current reveal speed in draws per second"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelField  = "field"
)

// unmatchedRoute labels requests chi could not route
const unmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Unexpected event payload"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
