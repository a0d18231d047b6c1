// Package ticker drives the reveal animation: it counts fixed intervals for
// the current run and stops at a terminal count.
package ticker

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Tick is one elapsed interval of a run. N starts at 1.
type Tick struct {
	Run string
	N   int
	Max int
}

// Sink receives ticks on the ticker goroutine and should return promptly
type Sink func(Tick)

// Ticker emits ticks for one run at a time. Reset replaces the run; the interval
// can be changed at any point and applies from the next tick.
type Ticker struct {
	clock clockwork.Clock
	sink  Sink

	mu       sync.Mutex
	interval time.Duration
	run      string
	n        int
	max      int
	active   bool
	gen      uint64

	wake chan struct{}
	quit chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// New creates a stopped ticker. Call Start to launch its goroutine.
func New(clock clockwork.Clock, interval time.Duration, sink Sink) *Ticker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{
		clock:    clock,
		sink:     sink,
		interval: interval,
		wake:     make(chan struct{}, 1),
		quit:     make(chan struct{}),
	}
}

// IntervalFor converts a speed in draws per second to a tick interval
func IntervalFor(speed float64) time.Duration {
	if speed <= 0 {
		return DefaultInterval
	}
	return time.Duration(float64(time.Second) / speed)
}

// ValidSpeed reports whether speed is within [MinSpeed, MaxSpeed] and on a SpeedStep boundary
func ValidSpeed(speed float64) bool {
	if speed < MinSpeed || speed > MaxSpeed {
		return false
	}
	steps := (speed - MinSpeed) / SpeedStep
	return steps == math.Trunc(steps)
}

// Start launches the tick loop
func (t *Ticker) Start() {
	t.wg.Add(1)
	go t.loop()
}

// Stop ends the tick loop and waits for it to exit. Safe to call more than once.
func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.quit) })
	t.wg.Wait()
}

// Reset starts counting a new run from zero; ticks 1..maxTicks follow.
// A pending tick of the previous run is cancelled.
func (t *Ticker) Reset(run string, maxTicks int) {
	t.mu.Lock()
	t.run = run
	t.n = 0
	t.max = maxTicks
	t.active = maxTicks > 0
	t.gen++
	t.mu.Unlock()

	t.signal()
}

// SetInterval changes the interval used when the next tick is armed.
// The tick already pending keeps its deadline.
func (t *Ticker) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	t.mu.Lock()
	t.interval = d
	t.mu.Unlock()
}

// Interval returns the current interval
func (t *Ticker) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

// Snapshot returns the run and tick count last emitted
func (t *Ticker) Snapshot() (run string, n, maxTicks int, active bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.run, t.n, t.max, t.active
}

func (t *Ticker) signal() {
	select {
	case t.wake <- struct{}{}:
	default:
		// a wake-up is already pending
	}
}

func (t *Ticker) loop() {
	defer t.wg.Done()

	for {
		// consume a stale wake-up; the state read below already reflects it
		select {
		case <-t.wake:
		default:
		}

		t.mu.Lock()
		active := t.active
		interval := t.interval
		gen := t.gen
		t.mu.Unlock()

		if !active {
			select {
			case <-t.wake:
				continue
			case <-t.quit:
				return
			}
		}

		timer := t.clock.NewTimer(interval)
		select {
		case <-timer.Chan():
			t.fire(gen)
		case <-t.wake:
			timer.Stop()
		case <-t.quit:
			timer.Stop()
			return
		}
	}
}

// fire emits the next tick unless the run was replaced after the timer was armed
func (t *Ticker) fire(gen uint64) {
	t.mu.Lock()
	if !t.active || t.gen != gen {
		t.mu.Unlock()
		return
	}
	t.n++
	tick := Tick{Run: t.run, N: t.n, Max: t.max}
	if t.n >= t.max {
		t.active = false
	}
	t.mu.Unlock()

	slog.Debug(LogMsgTick, "run_id", tick.Run, "tick", tick.N, "max", tick.Max)
	if t.sink != nil {
		t.sink(tick)
	}
}
