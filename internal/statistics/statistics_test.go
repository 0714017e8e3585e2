package statistics

import (
	"math"
	"testing"

	"github.com/cardtable/hearts/internal/game"
)

func result(seed int64, totals [game.NumPlayers]int) GameResult {
	return GameResult{Seed: seed, Hands: 5, Totals: totals}
}

func TestWinnersLowestScoreSharesTies(t *testing.T) {
	r := result(1, [game.NumPlayers]int{40, 12, 102, 12})
	winners := r.Winners()
	if len(winners) != 2 || winners[0] != 1 || winners[1] != 3 {
		t.Errorf("Winners = %v, want [1 3]", winners)
	}
}

func TestStatisticsAggregation(t *testing.T) {
	s := New()
	s.Add(result(1, [game.NumPlayers]int{10, 40, 60, 104}))
	s.Add(result(2, [game.NumPlayers]int{30, 20, 70, 110}))
	s.Add(result(3, [game.NumPlayers]int{50, 60, 80, 120}))

	if s.Games != 3 {
		t.Fatalf("Games = %d, want 3", s.Games)
	}
	if got := s.Seats[0].Wins; got != 2 {
		t.Errorf("seat 0 wins = %d, want 2", got)
	}
	if got := s.Seats[1].Wins; got != 1 {
		t.Errorf("seat 1 wins = %d, want 1", got)
	}
	if got := s.Seats[0].Mean(); math.Abs(got-30) > 1e-9 {
		t.Errorf("seat 0 mean = %f, want 30", got)
	}
	if got := s.Seats[0].Median(); math.Abs(got-30) > 1e-9 {
		t.Errorf("seat 0 median = %f, want 30", got)
	}
	if got := s.Seats[0].StdDev(); math.Abs(got-20) > 1e-9 {
		t.Errorf("seat 0 stddev = %f, want 20", got)
	}
	if got := s.Seats[0].WinRate(); math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("seat 0 win rate = %f, want 2/3", got)
	}
	if got := s.MeanHands(); math.Abs(got-5) > 1e-9 {
		t.Errorf("mean hands = %f, want 5", got)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestPercentileInterpolates(t *testing.T) {
	s := SeatStats{Values: []float64{0, 10, 20, 30, 40}}
	if got := s.Percentile(0.25); math.Abs(got-10) > 1e-9 {
		t.Errorf("P25 = %f, want 10", got)
	}
	if got := s.Percentile(1); math.Abs(got-40) > 1e-9 {
		t.Errorf("P100 = %f, want 40", got)
	}
	if got := s.Percentile(0.1); math.Abs(got-4) > 1e-9 {
		t.Errorf("P10 = %f, want 4", got)
	}
	// The argument is a fraction in 0..1; 0.9 interpolates between the
	// two highest values rather than returning the maximum.
	if got := s.Percentile(0.9); math.Abs(got-36) > 1e-9 {
		t.Errorf("P90 = %f, want 36", got)
	}
}

func TestValidateCatchesEmptyAggregate(t *testing.T) {
	if err := New().Validate(); err == nil {
		t.Error("expected an error for an empty aggregate")
	}
}

func TestMoonsAreCounted(t *testing.T) {
	s := New()
	r := result(9, [game.NumPlayers]int{0, 26, 26, 26})
	r.Moons[0] = 1
	s.Add(r)
	if got := s.Seats[0].Moons; got != 1 {
		t.Errorf("seat 0 moons = %d, want 1", got)
	}
}
