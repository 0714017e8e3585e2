package deck

import "testing"

func TestCardCodeRoundTrip(t *testing.T) {
	for _, card := range All() {
		parsed, err := ParseCode(card.Code())
		if err != nil {
			t.Fatalf("ParseCode(%q): %v", card.Code(), err)
		}
		if parsed != card {
			t.Errorf("round trip %s -> %q -> %s", card, card.Code(), parsed)
		}
	}
}

func TestCardCodeKnownValues(t *testing.T) {
	if got := TwoOfClubs.Code(); got != "02" {
		t.Errorf("♣2 code = %q, want 02", got)
	}
	if got := QueenOfSpades.Code(); got != "212" {
		t.Errorf("♠Q code = %q, want 212", got)
	}
}

func TestParseCodeRejectsGarbage(t *testing.T) {
	for _, code := range []string{"", "5", "415", "0xy", "9999", "01"} {
		if _, err := ParseCode(code); err == nil {
			t.Errorf("ParseCode(%q) succeeded, want error", code)
		}
	}
}

func TestCardPoints(t *testing.T) {
	if got := QueenOfSpades.Points(); got != 13 {
		t.Errorf("♠Q points = %d, want 13", got)
	}
	if got := (Card{Suit: Hearts, Rank: Two}).Points(); got != 1 {
		t.Errorf("♥2 points = %d, want 1", got)
	}
	if got := (Card{Suit: Clubs, Rank: Ace}).Points(); got != 0 {
		t.Errorf("♣A points = %d, want 0", got)
	}

	total := 0
	for _, card := range All() {
		total += card.Points()
	}
	if total != 26 {
		t.Errorf("deck carries %d points, want 26", total)
	}
}

func TestCardTextMarshalling(t *testing.T) {
	text, err := KingOfSpades.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var card Card
	if err := card.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if card != KingOfSpades {
		t.Errorf("text round trip gave %s, want ♠K", card)
	}

	var invalid Card
	if _, err := invalid.MarshalText(); err == nil {
		t.Error("marshalling the zero card should fail")
	}
}
