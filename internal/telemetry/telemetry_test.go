package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSetup_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"disabled", Config{Enabled: false, Endpoint: "localhost:4318"}},
		{"no endpoint", Config{Enabled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := otel.GetTracerProvider()

			shutdown, err := Setup(context.Background(), tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, before, otel.GetTracerProvider())

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			assert.NoError(t, shutdown(ctx))
		})
	}
}

func TestSetup_Enabled(t *testing.T) {
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	// non-routable, nothing is exported before shutdown
	shutdown, err := Setup(context.Background(), Config{
		Enabled:     true,
		Endpoint:    "192.0.2.1:4318",
		Insecure:    true,
		ServiceName: "raffle-rate-test",
		Version:     "test",
		Environment: "test",
	})
	require.NoError(t, err)

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)
	assert.NoError(t, shutdown(context.Background()))
}
