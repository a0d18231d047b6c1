package reveal

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RaffleRate_Go/internal/chart"
)

// FrameCache keeps rendered frames of the current run so clients that join late
// or re-request a tick do not re-render. It is purged whenever a run starts.
type FrameCache struct {
	lru *expirable.LRU[int, chart.Frame]
}

// NewFrameCache creates a cache holding up to size frames for ttl
func NewFrameCache(size int, ttl time.Duration) *FrameCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &FrameCache{lru: expirable.NewLRU[int, chart.Frame](size, nil, ttl)}
}

// Get returns the frame for tick
func (c *FrameCache) Get(tick int) (chart.Frame, bool) {
	return c.lru.Get(tick)
}

// Add stores a frame under its tick
func (c *FrameCache) Add(frame chart.Frame) {
	c.lru.Add(frame.Tick, frame)
}

// Purge drops every frame
func (c *FrameCache) Purge() {
	c.lru.Purge()
}

// Len returns the number of cached frames
func (c *FrameCache) Len() int {
	return c.lru.Len()
}
