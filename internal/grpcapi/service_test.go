package grpcapi

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/osse101/RaffleRate_Go/internal/event"
	"github.com/osse101/RaffleRate_Go/internal/raffle"
	"github.com/osse101/RaffleRate_Go/internal/reveal"
	"github.com/osse101/RaffleRate_Go/internal/sse"
	"github.com/osse101/RaffleRate_Go/internal/ticker"
)

const bufSize = 1 << 20

type idleTicker struct{}

func (idleTicker) Reset(string, int)         {}
func (idleTicker) SetInterval(time.Duration) {}

type testEnv struct {
	client  *Client
	conn    *grpc.ClientConn
	adapter *reveal.Adapter
	hub     *sse.Hub
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	bus := event.NewMemoryBus()
	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	adapter := reveal.NewAdapter(idleTicker{}, bus, nil,
		reveal.WithRandomSource(func() raffle.RandomSource { return raffle.NewSeededRNG(11) }))
	adapter.Start()

	lis := bufconn.Listen(bufSize)
	srv := NewWithListener(lis, NewService(adapter, hub))
	go func() { _ = srv.Start() }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = conn.Close()
		hub.Stop()
		_ = srv.Stop(ctx)
		_ = adapter.Shutdown(ctx)
	})

	return testEnv{client: NewClient(conn), conn: conn, adapter: adapter, hub: hub}
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestDraw(t *testing.T) {
	env := newTestEnv(t)
	ctx := testContext(t)

	in := raffle.Input{TicketsBought: 3, TotalTickets: 10, NumDraws: 10}
	summary, err := env.client.Draw(ctx, in)
	require.NoError(t, err)

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, in, summary.Input)
	assert.Equal(t, 11, summary.MaxTick)
	assert.InDelta(t, 0.3, summary.Probability, 1e-9)
	assert.Equal(t, summary.RunID, env.adapter.State().Run.RunID)
}

func TestDraw_Rejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := testContext(t)

	tests := []struct {
		name       string
		in         raffle.Input
		wantFields map[string]string
	}{
		{
			name:       "more tickets bought than exist",
			in:         raffle.Input{TicketsBought: 5, TotalTickets: 3, NumDraws: 10},
			wantFields: map[string]string{raffle.FieldTicketsBought: raffle.ErrMsgTicketsExceedTotal},
		},
		{
			name:       "too many draws",
			in:         raffle.Input{TicketsBought: 1, TotalTickets: 3, NumDraws: 101},
			wantFields: map[string]string{raffle.FieldNumDraws: "Must be at most 100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.client.Draw(ctx, tt.in)
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			assert.Equal(t, tt.wantFields, FieldViolations(err))
		})
	}

	assert.Nil(t, env.adapter.State().Run)
}

func TestDraw_UnknownField(t *testing.T) {
	env := newTestEnv(t)

	req, err := structpb.NewStruct(map[string]any{"tickets_bought": 1, "total_tickets": 2, "num_draws": 3, "seed": 9})
	require.NoError(t, err)

	err = env.conn.Invoke(testContext(t), FullMethodDraw, req, new(structpb.Struct))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestSetSpeed(t *testing.T) {
	env := newTestEnv(t)
	ctx := testContext(t)

	require.NoError(t, env.client.SetSpeed(ctx, 25))
	assert.Equal(t, 25.0, env.adapter.State().State.Speed)

	err := env.client.SetSpeed(ctx, 12)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, FieldViolations(err), FieldSpeed)
	assert.Equal(t, 25.0, env.adapter.State().State.Speed)
}

func TestGetFrame(t *testing.T) {
	env := newTestEnv(t)
	ctx := testContext(t)

	frame, err := env.client.GetFrame(ctx, 0)
	require.NoError(t, err)
	assert.True(t, frame.Empty())

	_, err = env.client.GetFrame(ctx, 1)
	assert.Equal(t, codes.NotFound, status.Code(err))

	summary, err := env.client.Draw(ctx, raffle.Input{TicketsBought: 1, TotalTickets: 2, NumDraws: 4})
	require.NoError(t, err)
	env.adapter.OnTick(ticker.Tick{Run: summary.RunID, N: 1, Max: summary.MaxTick})
	require.Eventually(t, func() bool { return env.adapter.State().State.CurrentTick == 1 }, time.Second, 5*time.Millisecond)

	frame, err = env.client.GetFrame(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, summary.RunID, frame.RunID)
	assert.Equal(t, 1, frame.Tick)
	assert.Equal(t, []int{0}, frame.Figure.Data[0].X)

	_, err = env.client.GetFrame(ctx, 3)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = env.client.GetFrame(ctx, 99)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestWatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := testContext(t)

	summary, err := env.client.Draw(ctx, raffle.Input{TicketsBought: 2, TotalTickets: 5, NumDraws: 3})
	require.NoError(t, err)
	env.adapter.OnTick(ticker.Tick{Run: summary.RunID, N: 1, Max: summary.MaxTick})
	require.Eventually(t, func() bool { return env.adapter.Frame().Tick == 1 }, time.Second, 5*time.Millisecond)

	stream, err := env.client.Watch(ctx)
	require.NoError(t, err)

	// the frame on screen comes first
	frame, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, 1, frame.Tick)

	require.Eventually(t, func() bool { return env.hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	env.adapter.OnTick(ticker.Tick{Run: summary.RunID, N: 2, Max: summary.MaxTick})

	frame, err = stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, summary.RunID, frame.RunID)
	assert.Equal(t, 2, frame.Tick)
	assert.Equal(t, "1", frame.Draws)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	resp, err := grpc_health_v1.NewHealthClient(env.conn).Check(testContext(t),
		&grpc_health_v1.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())
}
