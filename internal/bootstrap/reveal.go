package bootstrap

import (
	"github.com/jonboulle/clockwork"

	"github.com/osse101/RaffleRate_Go/internal/config"
	"github.com/osse101/RaffleRate_Go/internal/event"
	"github.com/osse101/RaffleRate_Go/internal/reveal"
	"github.com/osse101/RaffleRate_Go/internal/ticker"
)

// InitializeReveal builds the ticker and the adapter it drives and starts
// both. The ticker delivers into the adapter's inbox.
func InitializeReveal(cfg *config.Config, clock clockwork.Clock, bus event.Bus) (*ticker.Ticker, *reveal.Adapter) {
	var adapter *reveal.Adapter
	tk := ticker.New(clock, ticker.IntervalFor(cfg.DefaultSpeed), func(t ticker.Tick) {
		adapter.OnTick(t)
	})

	adapter = reveal.NewAdapter(tk, bus,
		reveal.NewFrameCache(cfg.FrameCacheSize, cfg.FrameCacheTTL),
		reveal.WithSpeed(cfg.DefaultSpeed))

	tk.Start()
	adapter.Start()
	return tk, adapter
}
