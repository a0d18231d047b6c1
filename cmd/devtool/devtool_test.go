package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(&TestSSECommand{})
	r.Register(&BenchCommand{})
	r.Register(&CheckDepsCommand{})

	var names []string
	for _, cmd := range r.List() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"bench", "check-deps", "test-sse"}, names)

	_, ok := r.Get("deploy")
	assert.False(t, ok)
}

func TestCheckHostile(t *testing.T) {
	assert.NoError(t, checkHostile("go", "test", "./internal/raffle", "-bench=BenchmarkSimulate"))
	assert.NoError(t, checkHostile("http://localhost:8080/a?b=1&c=2"))

	for _, bad := range []string{"a\nb", "x\x00", "a | b", "$(rm)", "a && b", "> out"} {
		assert.Error(t, checkHostile(bad), "%q", bad)
	}
}

func TestParseCoverageConfig(t *testing.T) {
	cfg, err := parseCoverageConfig([]string{"-run", "-pkgs", "./internal/raffle, ./internal/reveal", "logs/c.out", "75"})
	require.NoError(t, err)
	assert.Equal(t, coverageConfig{
		file:      "logs/c.out",
		threshold: 75,
		runTests:  true,
		packages:  []string{"./internal/raffle", "./internal/reveal"},
	}, cfg)

	cfg, err = parseCoverageConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "logs/coverage.out", cfg.file)
	assert.Equal(t, 80.0, cfg.threshold)

	_, err = parseCoverageConfig([]string{"../outside.out"})
	assert.Error(t, err)
	_, err = parseCoverageConfig([]string{"logs/c.out", "high"})
	assert.Error(t, err)
}

func TestParseCoverageTotal(t *testing.T) {
	out := "github.com/x/raffle.go:10:\tSimulate\t100.0%\ntotal:\t\t\t(statements)\t87.5%"
	coverage, err := parseCoverageTotal(out)
	require.NoError(t, err)
	assert.Equal(t, 87.5, coverage)

	_, err = parseCoverageTotal("no totals here")
	assert.Error(t, err)
}

func TestParseFrameLine(t *testing.T) {
	frame, ok := parseFrameLine(`data: {"id":"1","type":"reveal.frame","timestamp":0,"payload":{"run_id":"r1","tick":2,"max_tick":11,"final":false,"draws":"1"}}`)
	require.True(t, ok)
	assert.Equal(t, "r1", frame.RunID)
	assert.Equal(t, 2, frame.Tick)
	assert.Equal(t, "1", frame.Draws)

	_, ok = parseFrameLine(`data: {"type":"connected","payload":{}}`)
	assert.False(t, ok)
	_, ok = parseFrameLine("event: reveal.frame")
	assert.False(t, ok)
}
