package game

import "testing"

func TestMoveResultMessages(t *testing.T) {
	tests := []struct {
		result MoveResult
		want   string
	}{
		{MoveBadSuit, "Wrong suit!"},
		{MoveNoHearts, "You cannot play hearts yet!"},
		{MoveExpectingTwoOfClubs, "You must open with the two of clubs."},
		{MoveBadCard, "Please play a card."},
	}
	for _, tt := range tests {
		if got := tt.result.Message(); got != tt.want {
			t.Errorf("%s.Message() = %q, want %q", tt.result, got, tt.want)
		}
	}
}

func TestSeatName(t *testing.T) {
	if got := SeatName(HumanSeat); got != "You" {
		t.Errorf("SeatName(human) = %q", got)
	}
	if got := SeatName(2); got != "Player 3" {
		t.Errorf("SeatName(2) = %q, seats are shown one-based", got)
	}
}

func TestOpeningMessage(t *testing.T) {
	if got := OpeningMessage(HumanSeat); got != "You start. The two of clubs opens the hand." {
		t.Errorf("OpeningMessage(human) = %q", got)
	}
	if got := OpeningMessage(3); got != "Player 4 starts." {
		t.Errorf("OpeningMessage(3) = %q", got)
	}
}

func TestRoundEndMessage(t *testing.T) {
	tests := []struct {
		name   string
		state  State
		winner int
		want   string
	}{
		{"game over", GameEnd, -1, "End of game!"},
		{"hand over", HandStart, -1, "End of hand."},
		{"human takes it", RoundEnd, HumanSeat, "You take the trick."},
		{"computer takes it", RoundEnd, 1, "Player 2 takes the trick."},
	}
	for _, tt := range tests {
		if got := RoundEndMessage(tt.state, tt.winner); got != tt.want {
			t.Errorf("%s: RoundEndMessage(%s, %d) = %q, want %q",
				tt.name, tt.state, tt.winner, got, tt.want)
		}
	}
}
