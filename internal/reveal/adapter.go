package reveal

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/RaffleRate_Go/internal/chart"
	"github.com/osse101/RaffleRate_Go/internal/event"
	"github.com/osse101/RaffleRate_Go/internal/logger"
	"github.com/osse101/RaffleRate_Go/internal/raffle"
	"github.com/osse101/RaffleRate_Go/internal/ticker"
)

const tracerName = "github.com/osse101/RaffleRate_Go/internal/reveal"

// Ticker is the timer the adapter drives
type Ticker interface {
	Reset(run string, maxTicks int)
	SetInterval(d time.Duration)
}

// Option configures an Adapter
type Option func(*Adapter)

// WithRandomSource makes every simulation draw from newRNG()
func WithRandomSource(newRNG func() raffle.RandomSource) Option {
	return func(a *Adapter) { a.newRNG = newRNG }
}

// WithPrinter sets the printer used for frame texts
func WithPrinter(p *Printer) Option {
	return func(a *Adapter) { a.printer = p }
}

// WithSpeed sets the initial speed in draws per second
func WithSpeed(speed float64) Option {
	return func(a *Adapter) {
		if speed > 0 {
			a.state.Speed = speed
		}
	}
}

// Messages processed by the adapter goroutine
type (
	startedMsg struct {
		summary RunSummary
		series  raffle.DrawSeries
		done    chan struct{}
	}
	tickMsg struct {
		tick ticker.Tick
	}
	speedMsg struct {
		speed float64
		done  chan struct{}
	}
)

// Adapter owns the current series and reveal state. All mutation happens on its
// goroutine, driven by three messages: a started run, a tick and a speed change.
// Readers get copies of the published outputs.
type Adapter struct {
	ticker  Ticker
	bus     event.Bus
	cache   *FrameCache
	printer *Printer
	newRNG  func() raffle.RandomSource
	tracer  trace.Tracer

	inbox   chan any
	quit    chan struct{}
	stopped chan struct{}
	once    sync.Once

	// owned by the run loop
	series raffle.DrawSeries
	runID  string

	// published outputs
	mu      sync.RWMutex
	state   State
	frame   chart.Frame
	summary *RunSummary
	invalid map[string]string
	view    raffle.DrawSeries
}

// NewAdapter creates an adapter. Call Start before use.
func NewAdapter(tk Ticker, bus event.Bus, cache *FrameCache, opts ...Option) *Adapter {
	if cache == nil {
		cache = NewFrameCache(DefaultCacheSize, DefaultCacheTTL)
	}
	a := &Adapter{
		ticker:  tk,
		bus:     bus,
		cache:   cache,
		printer: DefaultPrinter(),
		newRNG:  raffle.DefaultRNG,
		tracer:  otel.Tracer(tracerName),
		inbox:   make(chan any, inboxSize),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
		state:   State{Speed: DefaultSpeed},
		frame:   chart.BlankFrame(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start launches the adapter goroutine and applies the initial speed
func (a *Adapter) Start() {
	a.ticker.SetInterval(ticker.IntervalFor(a.State().State.Speed))
	go a.run()
}

// Shutdown stops the adapter goroutine and waits for it to exit
func (a *Adapter) Shutdown(ctx context.Context) error {
	a.once.Do(func() { close(a.quit) })
	select {
	case <-a.stopped:
		slog.Info(LogMsgAdapterStopped)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CheckHealth reports whether the adapter goroutine is running
func (a *Adapter) CheckHealth(_ context.Context) error {
	select {
	case <-a.quit:
		return ErrAdapterStopped
	default:
		return nil
	}
}

// Draw validates in, runs the simulation on the caller's goroutine and hands the
// series to the adapter. It returns once the new run has replaced the old one.
// A validation failure marks the offending field invalid and leaves the
// current run untouched.
func (a *Adapter) Draw(ctx context.Context, in raffle.Input) (RunSummary, error) {
	log := logger.FromContext(ctx)

	if err := raffle.Validate(in); err != nil {
		fields := fieldsOf(err)
		a.mu.Lock()
		a.invalid = fields
		a.mu.Unlock()

		log.Info(LogMsgSimulationRejected, "fields", fields)
		a.publish(ctx, event.NewSimulationRejectedEvent(fields))
		return RunSummary{}, err
	}

	series := a.simulate(ctx, in)
	probability, _ := series.Probability()
	summary := RunSummary{
		RunID:        uuid.NewString(),
		Input:        in,
		Wins:         series.Wins(),
		Probability:  probability,
		FinalWinRate: series.FinalWinRate(),
		MaxTick:      series.Len(),
	}

	msg := startedMsg{summary: summary, series: series, done: make(chan struct{})}
	if err := a.send(ctx, msg, msg.done); err != nil {
		return RunSummary{}, err
	}

	log.Info(LogMsgSimulationStarted,
		"run_id", summary.RunID,
		"tickets_bought", in.TicketsBought,
		"total_tickets", in.TotalTickets,
		"num_draws", in.NumDraws,
		"wins", summary.Wins)
	return summary, nil
}

func (a *Adapter) simulate(ctx context.Context, in raffle.Input) raffle.DrawSeries {
	_, span := a.tracer.Start(ctx, SpanSimulate, trace.WithAttributes(
		attribute.Int("raffle.tickets_bought", in.TicketsBought),
		attribute.Int("raffle.total_tickets", in.TotalTickets),
		attribute.Int("raffle.num_draws", in.NumDraws),
	))
	defer span.End()

	series := raffle.Simulate(in, a.newRNG())
	span.SetAttributes(attribute.Int("raffle.wins", series.Wins()))
	return series
}

// SetSpeed changes the reveal speed in draws per second. It applies from the next tick.
func (a *Adapter) SetSpeed(ctx context.Context, speed float64) error {
	if speed <= 0 {
		return ErrInvalidSpeed
	}
	msg := speedMsg{speed: speed, done: make(chan struct{})}
	return a.send(ctx, msg, msg.done)
}

// OnTick queues a tick. An intermediate tick that does not fit the inbox is
// dropped; the terminal tick waits for room so the reveal always completes.
func (a *Adapter) OnTick(t ticker.Tick) {
	msg := tickMsg{tick: t}
	if t.Max > 0 && t.N == t.Max {
		select {
		case a.inbox <- msg:
		case <-a.quit:
		}
		return
	}

	select {
	case a.inbox <- msg:
	default:
		slog.Warn(LogMsgTickDropped, "run_id", t.Run, "tick", t.N)
	}
}

// Frame returns the latest rendered frame, or the blank frame before the first run
func (a *Adapter) Frame() chart.Frame {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.frame
}

// FrameAt returns the frame of an already revealed tick of the current run
func (a *Adapter) FrameAt(tick int) (chart.Frame, error) {
	if frame, ok := a.cache.Get(tick); ok {
		return frame, nil
	}

	a.mu.RLock()
	series, state, summary := a.view, a.state, a.summary
	a.mu.RUnlock()

	if summary == nil {
		return chart.Frame{}, ErrNoSeries
	}
	if tick > state.CurrentTick && tick <= state.MaxTick {
		return chart.Frame{}, ErrTickNotRevealed
	}

	frame, err := Render(series, tick, a.printer)
	if err != nil {
		return chart.Frame{}, err
	}
	frame.RunID = summary.RunID
	return frame, nil
}

// State returns a copy of the reveal state, the current run and any invalid fields
func (a *Adapter) State() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	snap := Snapshot{State: a.state}
	if a.summary != nil {
		run := *a.summary
		snap.Run = &run
	}
	if len(a.invalid) > 0 {
		snap.InvalidFields = maps.Clone(a.invalid)
	}
	return snap
}

func (a *Adapter) send(ctx context.Context, msg any, done <-chan struct{}) error {
	select {
	case a.inbox <- msg:
	case <-a.quit:
		return ErrAdapterStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-a.stopped:
		return ErrAdapterStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *Adapter) run() {
	defer close(a.stopped)

	for {
		select {
		case <-a.quit:
			return
		case msg := <-a.inbox:
			switch m := msg.(type) {
			case startedMsg:
				a.handleStarted(m)
			case tickMsg:
				a.handleTick(m.tick)
			case speedMsg:
				a.handleSpeed(m)
			}
		}
	}
}

func (a *Adapter) handleStarted(m startedMsg) {
	a.series = m.series
	a.runID = m.summary.RunID
	a.cache.Purge()

	// the previous run's frame must not outlive it
	start, err := RenderStart(m.series, a.printer)
	if err != nil {
		start = chart.BlankFrame()
	}
	start.RunID = m.summary.RunID

	a.mu.Lock()
	a.state.CurrentTick = 0
	a.state.MaxTick = m.summary.MaxTick
	a.summary = &m.summary
	a.invalid = nil
	a.view = m.series
	a.frame = start
	a.mu.Unlock()

	a.ticker.Reset(m.summary.RunID, m.summary.MaxTick)
	close(m.done)

	ctx := context.Background()
	a.publish(ctx, event.NewSimulationStartedEvent(event.SimulationStartedPayloadV1{
		RunID:         m.summary.RunID,
		TicketsBought: m.summary.Input.TicketsBought,
		TotalTickets:  m.summary.Input.TotalTickets,
		NumDraws:      m.summary.Input.NumDraws,
		Wins:          m.summary.Wins,
		Probability:   m.summary.Probability,
		FinalWinRate:  m.summary.FinalWinRate,
		MaxTick:       m.summary.MaxTick,
	}))
	a.publish(ctx, event.NewFrameRenderedEvent(start))
}

func (a *Adapter) handleTick(t ticker.Tick) {
	if t.Run != a.runID {
		slog.Debug(LogMsgStaleTick, "run_id", t.Run, "current_run_id", a.runID, "tick", t.N)
		return
	}

	frame, ok := a.cache.Get(t.N)
	if !ok {
		var err error
		frame, err = Render(a.series, t.N, a.printer)
		if err != nil {
			// the published frame stays as it was
			slog.Debug(LogMsgRenderSkipped, "run_id", a.runID, "tick", t.N, "error", err)
			a.publish(context.Background(), event.NewRenderSkippedEvent(a.runID, t.N, err))
			return
		}
		frame.RunID = a.runID
		a.cache.Add(frame)
	}

	a.mu.Lock()
	a.state.CurrentTick = t.N
	a.frame = frame
	a.mu.Unlock()

	ctx := context.Background()
	a.publish(ctx, event.NewFrameRenderedEvent(frame))
	if frame.Final {
		slog.Info(LogMsgRevealCompleted, "run_id", a.runID, "max_tick", frame.MaxTick)
		a.publish(ctx, event.NewRevealCompletedEvent(a.runID, frame.MaxTick))
	}
}

func (a *Adapter) handleSpeed(m speedMsg) {
	interval := ticker.IntervalFor(m.speed)

	a.mu.Lock()
	a.state.Speed = m.speed
	a.mu.Unlock()

	a.ticker.SetInterval(interval)
	close(m.done)

	slog.Debug(LogMsgSpeedChanged, "speed", m.speed, "interval", interval)
	a.publish(context.Background(), event.NewSpeedChangedEvent(m.speed, interval))
}

func (a *Adapter) publish(ctx context.Context, evt event.Event) {
	if a.bus == nil {
		return
	}
	if err := a.bus.Publish(ctx, evt); err != nil {
		slog.Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// fieldsOf extracts per-field messages from a validation error
func fieldsOf(err error) map[string]string {
	var fe *raffle.FieldError
	if errors.As(err, &fe) {
		return fe.Fields()
	}
	return map[string]string{"input": err.Error()}
}
