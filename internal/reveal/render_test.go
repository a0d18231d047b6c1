package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaffleRate_Go/internal/chart"
	"github.com/osse101/RaffleRate_Go/internal/raffle"
)

func seededSeries(t *testing.T, in raffle.Input) raffle.DrawSeries {
	t.Helper()
	s := raffle.Simulate(in, raffle.NewSeededRNG(42))
	require.False(t, s.Empty())
	return s
}

func TestRender_NoSeries(t *testing.T) {
	_, err := Render(raffle.DrawSeries{}, 1, nil)
	assert.ErrorIs(t, err, ErrNoSeries)
}

func TestRender_TickOutOfRange(t *testing.T) {
	s := seededSeries(t, raffle.Input{TicketsBought: 3, TotalTickets: 10, NumDraws: 10})

	for _, tick := range []int{-1, 0, 12} {
		_, err := Render(s, tick, nil)
		assert.ErrorIs(t, err, ErrTickOutOfRange, "tick %d", tick)
	}
}

func TestRender_RevealsPrefix(t *testing.T) {
	s := seededSeries(t, raffle.Input{TicketsBought: 3, TotalTickets: 10, NumDraws: 10})
	wins := s.CumulativeWins()

	frame, err := Render(s, 4, nil)
	require.NoError(t, err)

	require.Len(t, frame.Figure.Data, 2)
	observed, expected := frame.Figure.Data[0], frame.Figure.Data[1]

	assert.Equal(t, chart.TraceNameObserved, observed.Name)
	assert.Equal(t, []int{0, 1, 2, 3}, observed.X)
	assert.Equal(t, []float64{float64(wins[0]), float64(wins[1]), float64(wins[2]), float64(wins[3])}, observed.Y)

	assert.Equal(t, chart.TraceNameExpected, expected.Name)
	assert.Equal(t, []int{0, 1, 2, 3}, expected.X)
	require.Len(t, expected.Y, 4)
	assert.InDelta(t, 0.9, expected.Y[3], 1e-9)

	assert.Equal(t, 4, frame.Tick)
	assert.Equal(t, 11, frame.MaxTick)
	assert.False(t, frame.Final)
	assert.Equal(t, "3", frame.Draws)
	assert.Equal(t, 3, frame.DrawsShown)
}

func TestRender_TextsUseFirstExpectedAndFinalRate(t *testing.T) {
	s := seededSeries(t, raffle.Input{TicketsBought: 3, TotalTickets: 10, NumDraws: 10})
	finalRate := Percent(s.FinalWinRate())

	for _, tick := range []int{1, 2, 11} {
		frame, err := Render(s, tick, nil)
		require.NoError(t, err)

		assert.Equal(t, "30.00%", frame.Probability, "tick %d", tick)
		assert.InDelta(t, 0.3, frame.ProbabilityValue, 1e-9)
		assert.Equal(t, finalRate, frame.WinRate, "win rate is the final rate from the first frame")
		assert.Equal(t, s.FinalWinRate(), frame.WinRateValue)
	}
}

func TestRender_FinalTick(t *testing.T) {
	s := seededSeries(t, raffle.Input{TicketsBought: 3, TotalTickets: 10, NumDraws: 10})

	frame, err := Render(s, 11, nil)
	require.NoError(t, err)

	assert.True(t, frame.Final)
	assert.Equal(t, "10", frame.Draws)
	assert.Len(t, frame.Figure.Data[0].X, 11)
	assert.Equal(t,
		"Line chart showing the observed win rate "+Percent(s.FinalWinRate())+" and expected win rate 30.00% after 10 draws",
		frame.Announcement)
}

func TestRender_AxisRanges(t *testing.T) {
	s := seededSeries(t, raffle.Input{TicketsBought: 3, TotalTickets: 10, NumDraws: 10})
	wins := s.Wins()

	frame, err := Render(s, 1, nil)
	require.NoError(t, err)

	x := frame.Figure.Layout.XAxis.Range
	y := frame.Figure.Layout.YAxis.Range
	assert.InDelta(t, -0.1, x[0], 1e-9)
	assert.InDelta(t, 10.1, x[1], 1e-9)
	assert.InDelta(t, -0.1, y[0], 1e-9)
	top := 3.0
	if float64(wins) > top {
		top = float64(wins)
	}
	assert.InDelta(t, top+0.1, y[1], 1e-9)
}

func TestRender_MarkersWhenSeriesCoincide(t *testing.T) {
	s := seededSeries(t, raffle.Input{TicketsBought: 4, TotalTickets: 4, NumDraws: 3})

	frame, err := Render(s, 4, nil)
	require.NoError(t, err)

	assert.Equal(t, chart.ModeLines, frame.Figure.Data[0].Mode)
	assert.Equal(t, chart.ModeMarkers, frame.Figure.Data[1].Mode)
	assert.Equal(t, "100.00%", frame.Probability)
	assert.Equal(t, "100.00%", frame.WinRate)
}

func TestRender_LinesOnceSeriesDiverge(t *testing.T) {
	// with half the tickets held, index 1 is either 0 or 1 wins against 0.5 expected
	s := seededSeries(t, raffle.Input{TicketsBought: 1, TotalTickets: 2, NumDraws: 5})

	first, err := Render(s, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, chart.ModeMarkers, first.Figure.Data[1].Mode, "only the zero baseline is revealed")

	second, err := Render(s, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, chart.ModeLines, second.Figure.Data[1].Mode)
}

func TestRender_ProbabilityTiesRoundToEven(t *testing.T) {
	tests := []struct {
		bought int
		want   string
	}{
		{1, "0.12%"},
		{5, "0.62%"},
	}

	for _, tt := range tests {
		s := seededSeries(t, raffle.Input{TicketsBought: tt.bought, TotalTickets: 800, NumDraws: 1})

		frame, err := Render(s, 2, nil)
		require.NoError(t, err)

		assert.Equal(t, tt.want, frame.Probability, "%d/800", tt.bought)
		assert.Contains(t, frame.Announcement, "expected win rate "+tt.want+" after 1 draws")
	}
}

func TestRenderStart(t *testing.T) {
	s := seededSeries(t, raffle.Input{TicketsBought: 3, TotalTickets: 10, NumDraws: 10})

	frame, err := RenderStart(s, nil)
	require.NoError(t, err)

	require.Len(t, frame.Figure.Data, 2)
	assert.Empty(t, frame.Figure.Data[0].X)
	assert.Empty(t, frame.Figure.Data[1].Y)
	assert.Equal(t, 0, frame.Tick)
	assert.Equal(t, 11, frame.MaxTick)
	assert.False(t, frame.Final)
	assert.Equal(t, "30.00%", frame.Probability)
	assert.Equal(t, Percent(s.FinalWinRate()), frame.WinRate)
	assert.Equal(t, "10", frame.Draws)

	last, err := Render(s, 11, nil)
	require.NoError(t, err)
	assert.Equal(t, last.Figure.Layout, frame.Figure.Layout, "axes are the run's from the start")

	_, err = RenderStart(raffle.DrawSeries{}, nil)
	assert.ErrorIs(t, err, ErrNoSeries)
}

func TestRender_DoesNotAliasSeries(t *testing.T) {
	s := seededSeries(t, raffle.Input{TicketsBought: 3, TotalTickets: 10, NumDraws: 10})

	frame, err := Render(s, 3, nil)
	require.NoError(t, err)
	frame.Figure.Data[0].X[0] = 99

	assert.Equal(t, 0, s.DrawIndex()[0])
}

func BenchmarkRender(b *testing.B) {
	s := raffle.Simulate(raffle.Input{TicketsBought: 500, TotalTickets: 1000, NumDraws: 100}, raffle.NewSeededRNG(1))
	printer := DefaultPrinter()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Render(s, s.Len(), printer); err != nil {
			b.Fatal(err)
		}
	}
}
