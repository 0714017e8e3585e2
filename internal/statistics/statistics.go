// Package statistics aggregates the outcomes of simulated Hearts games
// into per-seat summaries: win rates, moon shots and the distribution
// of final scores.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/cardtable/hearts/internal/game"
)

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Seed   int64               // RNG seed of the game, for replay
	Hands  int                 // number of hands the game lasted
	Totals [game.NumPlayers]int // final cumulative score per seat
	Moons  [game.NumPlayers]int // moon shots per seat
}

// Winners returns the seats with the lowest final score. Hearts is a
// low-score game; ties produce multiple winners.
func (r GameResult) Winners() []int {
	best := r.Totals[0]
	for _, pts := range r.Totals[1:] {
		if pts < best {
			best = pts
		}
	}
	var winners []int
	for seat, pts := range r.Totals {
		if pts == best {
			winners = append(winners, seat)
		}
	}
	return winners
}

// SeatStats accumulates one seat's results across games.
type SeatStats struct {
	Games     int
	Wins      int
	Moons     int
	SumPoints float64
	SumSq     float64
	Values    []float64 // final score of every game, for median/percentiles
}

// Mean returns the seat's average final score.
func (s *SeatStats) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumPoints / float64(s.Games)
}

// Variance returns the sample variance of the seat's final scores.
func (s *SeatStats) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of the final scores.
func (s *SeatStats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// WinRate returns the fraction of games the seat won (ties count).
func (s *SeatStats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Median returns the median final score.
func (s *SeatStats) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the final score at the given percentile (0 to 1),
// linearly interpolated.
func (s *SeatStats) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Statistics aggregates simulation results per seat.
type Statistics struct {
	Games int
	Hands int
	Seats [game.NumPlayers]SeatStats
}

// New creates an empty aggregate.
func New() *Statistics {
	return &Statistics{}
}

// Add incorporates one game's result.
func (s *Statistics) Add(result GameResult) {
	s.Games++
	s.Hands += result.Hands
	for seat := range result.Totals {
		pts := float64(result.Totals[seat])
		st := &s.Seats[seat]
		st.Games++
		st.SumPoints += pts
		st.SumSq += pts * pts
		st.Values = append(st.Values, pts)
		st.Moons += result.Moons[seat]
	}
	for _, seat := range result.Winners() {
		s.Seats[seat].Wins++
	}
}

// MeanHands returns the average number of hands per game.
func (s *Statistics) MeanHands() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Hands) / float64(s.Games)
}

// Validate checks the aggregate for internal consistency.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("no games recorded")
	}
	wins := 0
	for seat := range s.Seats {
		st := &s.Seats[seat]
		if st.Games != s.Games {
			return fmt.Errorf("seat %d recorded %d games, aggregate has %d", seat, st.Games, s.Games)
		}
		if len(st.Values) != st.Games {
			return fmt.Errorf("seat %d has %d values for %d games", seat, len(st.Values), st.Games)
		}
		wins += st.Wins
	}
	// Every game has at least one winner, ties can add more.
	if wins < s.Games {
		return fmt.Errorf("%d wins recorded across %d games", wins, s.Games)
	}
	return nil
}
