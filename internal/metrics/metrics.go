package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Raffle Metrics
var (
	SimulationsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSimulationsStarted,
			Help: HelpTextSimulationsStarted,
		},
	)

	SimulationsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSimulationsRejected,
			Help: HelpTextSimulationsRejected,
		},
		[]string{LabelField},
	)

	DrawsSimulated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDrawsSimulated,
			Help: HelpTextDrawsSimulated,
		},
	)

	WinsObserved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWinsObserved,
			Help: HelpTextWinsObserved,
		},
	)

	FramesRendered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFramesRendered,
			Help: HelpTextFramesRendered,
		},
	)

	RendersSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRendersSkipped,
			Help: HelpTextRendersSkipped,
		},
	)

	RevealsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRevealsCompleted,
			Help: HelpTextRevealsCompleted,
		},
	)

	RevealSpeed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameRevealSpeed,
			Help: HelpTextRevealSpeed,
		},
	)
)
