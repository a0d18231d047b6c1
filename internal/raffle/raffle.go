// Package raffle simulates repeated raffle draws and records how the observed
// win count tracks the expected one.
package raffle

import (
	"encoding/json"
	"slices"
)

// Input describes one simulation request.
// TicketsBought <= TotalTickets must hold before Simulate is called (see Validate).
type Input struct {
	TicketsBought int `json:"tickets_bought"`
	TotalTickets  int `json:"total_tickets"`
	NumDraws      int `json:"num_draws"`
}

// DrawSeries is the immutable result of one simulation.
// Index 0 is the "no draws yet" point, so every sequence has NumDraws+1 entries.
type DrawSeries struct {
	drawIndex      []int
	cumulativeWins []int
	expectedWins   []float64
	finalWinRate   float64
}

// Point is one index of a DrawSeries
type Point struct {
	Draw     int     `json:"draw"`
	Wins     int     `json:"wins"`
	Expected float64 `json:"expected"`
}

// Simulate runs in.NumDraws independent draws.
//
// Each draw picks a winning ticket uniformly from [1, TotalTickets] and a fresh
// set of TicketsBought distinct held tickets from the same range; the draw is a
// win when the winning ticket is held. Input outside the contract yields an
// empty series.
func Simulate(in Input, rng RandomSource) DrawSeries {
	if !in.withinContract() {
		return DrawSeries{}
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	n := in.NumDraws
	s := DrawSeries{
		drawIndex:      make([]int, 0, n+1),
		cumulativeWins: make([]int, 0, n+1),
		expectedWins:   make([]float64, 0, n+1),
	}
	s.drawIndex = append(s.drawIndex, 0)
	s.cumulativeWins = append(s.cumulativeWins, 0)
	s.expectedWins = append(s.expectedWins, 0)

	// pool holds every ticket number; its first TicketsBought entries are the
	// held set after each partial shuffle.
	pool := make([]int, in.TotalTickets)
	for i := range pool {
		pool[i] = i + 1
	}

	wins := 0
	for i := 1; i <= n; i++ {
		winning := rng.IntN(in.TotalTickets) + 1
		held := sampleWithoutReplacement(pool, in.TicketsBought, rng)
		if slices.Contains(held, winning) {
			wins++
		}

		s.drawIndex = append(s.drawIndex, i)
		s.cumulativeWins = append(s.cumulativeWins, wins)
		s.expectedWins = append(s.expectedWins, ExpectedWinsAt(i, in.TicketsBought, in.TotalTickets))
	}

	s.finalWinRate = float64(wins) / float64(n)
	return s
}

// ExpectedWinsAt returns i * bought/total as a single rounded division, so the
// value does not drift the way a running sum of probabilities would.
func ExpectedWinsAt(i, bought, total int) float64 {
	return float64(i*bought) / float64(total)
}

// sampleWithoutReplacement runs k steps of a Fisher-Yates shuffle over pool and
// returns the prefix. Any starting order of pool gives a uniform k-subset, so the
// pool is reused across draws without resetting it.
func sampleWithoutReplacement(pool []int, k int, rng RandomSource) []int {
	for j := 0; j < k; j++ {
		r := j + rng.IntN(len(pool)-j)
		pool[j], pool[r] = pool[r], pool[j]
	}
	return pool[:k]
}

func (in Input) withinContract() bool {
	return in.TotalTickets >= 1 &&
		in.TicketsBought >= 0 &&
		in.TicketsBought <= in.TotalTickets &&
		in.NumDraws >= 1
}

// Len returns the number of points in the series (NumDraws + 1), or 0 when empty
func (s DrawSeries) Len() int { return len(s.drawIndex) }

// Empty reports whether the series holds no points
func (s DrawSeries) Empty() bool { return len(s.drawIndex) == 0 }

// NumDraws returns the number of simulated draws
func (s DrawSeries) NumDraws() int {
	if s.Empty() {
		return 0
	}
	return len(s.drawIndex) - 1
}

// DrawIndex returns a copy of the draw indices 0..NumDraws
func (s DrawSeries) DrawIndex() []int { return slices.Clone(s.drawIndex) }

// CumulativeWins returns a copy of the running win counts
func (s DrawSeries) CumulativeWins() []int { return slices.Clone(s.cumulativeWins) }

// ExpectedWins returns a copy of the expected win counts
func (s DrawSeries) ExpectedWins() []float64 { return slices.Clone(s.expectedWins) }

// FinalWinRate returns wins / NumDraws for the whole run
func (s DrawSeries) FinalWinRate() float64 { return s.finalWinRate }

// Wins returns the total number of wins in the run
func (s DrawSeries) Wins() int {
	if s.Empty() {
		return 0
	}
	return s.cumulativeWins[len(s.cumulativeWins)-1]
}

// At returns the point at index i. ok is false when i is out of range.
func (s DrawSeries) At(i int) (Point, bool) {
	if i < 0 || i >= len(s.drawIndex) {
		return Point{}, false
	}
	return Point{
		Draw:     s.drawIndex[i],
		Wins:     s.cumulativeWins[i],
		Expected: s.expectedWins[i],
	}, true
}

// Probability returns the per-draw win probability as recorded at index 1.
// ok is false for an empty series.
func (s DrawSeries) Probability() (float64, bool) {
	if len(s.expectedWins) < 2 {
		return 0, false
	}
	return s.expectedWins[1], true
}

// Matches reports whether observed and expected wins are equal at every index
func (s DrawSeries) Matches() bool {
	for i, w := range s.cumulativeWins {
		if float64(w) != s.expectedWins[i] {
			return false
		}
	}
	return !s.Empty()
}

type seriesJSON struct {
	DrawIndex      []int     `json:"draw_index"`
	CumulativeWins []int     `json:"cumulative_wins"`
	ExpectedWins   []float64 `json:"expected_wins"`
	FinalWinRate   float64   `json:"final_win_rate"`
}

// MarshalJSON exposes the series read-only over the API
func (s DrawSeries) MarshalJSON() ([]byte, error) {
	return json.Marshal(seriesJSON{
		DrawIndex:      s.drawIndex,
		CumulativeWins: s.cumulativeWins,
		ExpectedWins:   s.expectedWins,
		FinalWinRate:   s.finalWinRate,
	})
}
