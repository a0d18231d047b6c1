package reveal

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/osse101/RaffleRate_Go/internal/chart"
	"github.com/osse101/RaffleRate_Go/internal/raffle"
)

var (
	// ErrNoSeries is returned when there is nothing to render
	ErrNoSeries = errors.New("no draw series")
	// ErrTickOutOfRange is returned for a tick outside 1..len(series)
	ErrTickOutOfRange = errors.New("tick out of range")
)

// Render builds the frame that reveals the first tick points of series.
//
// Tick n shows indices [0, n); the last valid tick is series.Len(), which is
// NumDraws+1. The expected series switches to markers while it coincides
// with the observed one at every revealed point. The probability text always
// comes from ExpectedWins[1] and the observed win rate is the run's final
// rate from the first frame on.
func Render(series raffle.DrawSeries, tick int, printer *Printer) (chart.Frame, error) {
	if series.Empty() {
		return chart.Frame{}, ErrNoSeries
	}
	if tick < 1 || tick > series.Len() {
		return chart.Frame{}, fmt.Errorf("%w: %d not in [1, %d]", ErrTickOutOfRange, tick, series.Len())
	}
	return build(series, tick, printer), nil
}

// RenderStart builds the frame shown as soon as a run replaces the previous
// one: empty traces on the new run's axes with the run's texts. Its draw count
// is the last draw, as the reveal has not started counting yet.
func RenderStart(series raffle.DrawSeries, printer *Printer) (chart.Frame, error) {
	if series.Empty() {
		return chart.Frame{}, ErrNoSeries
	}
	return build(series, 0, printer), nil
}

func build(series raffle.DrawSeries, tick int, printer *Printer) chart.Frame {
	if printer == nil {
		printer = DefaultPrinter()
	}

	draws := series.DrawIndex()
	wins := series.CumulativeWins()
	expected := series.ExpectedWins()

	probability, _ := series.Probability()
	winRate := series.FinalWinRate()
	drawsShown := draws[len(draws)-1]
	if tick > 0 {
		drawsShown = draws[tick-1]
	}

	observed := make([]float64, tick)
	for i, w := range wins[:tick] {
		observed[i] = float64(w)
	}
	markers := slices.Equal(observed, expected[:tick])

	figure := chart.Figure{
		Data: []chart.Trace{
			chart.ObservedTrace(draws[:tick], observed),
			chart.ExpectedTrace(draws[:tick], expected[:tick], markers),
		},
		Layout: chart.NewLayout(xRange(series), yRange(wins, expected)),
	}

	return chart.Frame{
		Tick:             tick,
		MaxTick:          series.Len(),
		Final:            tick == series.Len(),
		Figure:           figure,
		Probability:      Percent(probability),
		WinRate:          Percent(winRate),
		Draws:            strconv.Itoa(drawsShown),
		Announcement:     printer.Announcement(winRate, probability, drawsShown),
		ProbabilityValue: probability,
		WinRateValue:     winRate,
		DrawsShown:       drawsShown,
	}
}

// xRange spans the whole run so the axis does not rescale while revealing
func xRange(series raffle.DrawSeries) [2]float64 {
	return [2]float64{-chart.AxisPadding, float64(series.Len()) - 1 + chart.AxisPadding}
}

func yRange(wins []int, expected []float64) [2]float64 {
	top := math.Max(float64(wins[len(wins)-1]), expected[len(expected)-1]) + chart.AxisPadding
	return [2]float64{-chart.AxisPadding, top}
}
