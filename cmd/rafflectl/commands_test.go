package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/osse101/RaffleRate_Go/internal/chart"
	"github.com/osse101/RaffleRate_Go/internal/grpcapi"
	"github.com/osse101/RaffleRate_Go/internal/raffle"
	"github.com/osse101/RaffleRate_Go/internal/reveal"
)

type fakeClient struct {
	drawn  raffle.Input
	speed  float64
	frames map[int]chart.Frame
	err    error
}

func (f *fakeClient) Draw(_ context.Context, in raffle.Input) (reveal.RunSummary, error) {
	f.drawn = in
	if f.err != nil {
		return reveal.RunSummary{}, f.err
	}
	return reveal.RunSummary{RunID: "run-1", Input: in, Wins: 4, Probability: 0.3, FinalWinRate: 0.4, MaxTick: in.NumDraws + 1}, nil
}

func (f *fakeClient) SetSpeed(_ context.Context, speed float64) error {
	f.speed = speed
	return f.err
}

func (f *fakeClient) GetFrame(_ context.Context, tick int) (chart.Frame, error) {
	if f.err != nil {
		return chart.Frame{}, f.err
	}
	return f.frames[tick], nil
}

func (f *fakeClient) Watch(context.Context) (*grpcapi.FrameStream, error) {
	return nil, status.Error(codes.Unimplemented, "watch")
}

func TestRunDraw(t *testing.T) {
	client := &fakeClient{}
	var out bytes.Buffer

	err := runDraw(context.Background(), client, []string{"-x", "3", "-n", "10", "-d", "10"}, &out)
	require.NoError(t, err)

	assert.Equal(t, raffle.Input{TicketsBought: 3, TotalTickets: 10, NumDraws: 10}, client.drawn)
	assert.Contains(t, out.String(), "run run-1")
	assert.Contains(t, out.String(), "expected win rate: 30.00%")
	assert.Contains(t, out.String(), "observed win rate: 40.00% (4 wins in 10 draws)")
}

func TestRunDraw_Defaults(t *testing.T) {
	client := &fakeClient{}

	require.NoError(t, runDraw(context.Background(), client, nil, &bytes.Buffer{}))
	assert.Equal(t, raffle.Input{
		TicketsBought: raffle.DefaultTicketsBought,
		TotalTickets:  raffle.DefaultTotalTickets,
		NumDraws:      raffle.DefaultNumDraws,
	}, client.drawn)
}

func TestRunSpeed(t *testing.T) {
	client := &fakeClient{}
	var out bytes.Buffer

	require.NoError(t, runSpeed(context.Background(), client, []string{"25"}, &out))
	assert.Equal(t, 25.0, client.speed)
	assert.Equal(t, "speed set to 25 draws per second\n", out.String())

	assert.Error(t, runSpeed(context.Background(), client, nil, &out))
	assert.Error(t, runSpeed(context.Background(), client, []string{"fast"}, &out))
}

func TestRunFrame(t *testing.T) {
	client := &fakeClient{frames: map[int]chart.Frame{
		0: {RunID: "run-1", Tick: 3, MaxTick: 11, Draws: "2", Probability: "30%", WinRate: "40%"},
	}}

	var out bytes.Buffer
	require.NoError(t, runFrame(context.Background(), client, nil, &out))
	assert.Equal(t, "[3/11] draws 2  expected 30%  observed 40%\n", out.String())

	out.Reset()
	require.NoError(t, runFrame(context.Background(), client, []string{"7"}, &out))
	assert.Equal(t, "no run yet\n", out.String())

	assert.Error(t, runFrame(context.Background(), client, []string{"x"}, &out))
}

func TestDescribe(t *testing.T) {
	st, err := status.New(codes.InvalidArgument, "invalid request").WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: "total_tickets", Description: "Must be at least 1"},
			{Field: "num_draws", Description: "Must be at most 100"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "invalid request\n  num_draws: Must be at most 100\n  total_tickets: Must be at least 1", describe(st.Err()))
	assert.Equal(t, "rpc error: code = NotFound desc = no draw series",
		describe(status.Error(codes.NotFound, "no draw series")))
}
