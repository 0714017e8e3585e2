package deck

import (
	"errors"
	"testing"
)

func TestContainerRemoveAndQuery(t *testing.T) {
	c := NewContainer([]Card{
		{Suit: Clubs, Rank: Nine},
		{Suit: Clubs, Rank: Three},
		{Suit: Spades, Rank: Queen},
	})

	if !c.HasCard(QueenOfSpades) {
		t.Fatal("container should hold ♠Q")
	}
	if err := c.RemoveCard(QueenOfSpades); err != nil {
		t.Fatal(err)
	}
	if c.HasCard(QueenOfSpades) {
		t.Error("♠Q still present after removal")
	}
	if err := c.RemoveCard(QueenOfSpades); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("second removal error = %v, want ErrCardNotFound", err)
	}
	if got := c.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
}

func TestContainerMinMaxAndCounts(t *testing.T) {
	c := NewContainer([]Card{
		{Suit: Diamonds, Rank: King},
		{Suit: Diamonds, Rank: Four},
		{Suit: Diamonds, Rank: Nine},
	})

	if got := c.MinOfSuit(Diamonds); got != Four {
		t.Errorf("MinOfSuit = %s, want 4", got)
	}
	if got := c.MaxOfSuit(Diamonds); got != King {
		t.Errorf("MaxOfSuit = %s, want K", got)
	}
	if got := c.MinOfSuit(Hearts); got != 0 {
		t.Errorf("MinOfSuit(empty) = %d, want 0 sentinel", got)
	}
	if got := c.CountAbove(Diamonds, Four); got != 2 {
		t.Errorf("CountAbove(4) = %d, want 2", got)
	}
	if got := c.CountBelow(Diamonds, Nine); got != 1 {
		t.Errorf("CountBelow(9) = %d, want 1", got)
	}
	if got := c.CountAbove(Diamonds, King); got != 0 {
		t.Errorf("CountAbove(K) = %d, want 0 (strictly above)", got)
	}
}

func TestContainerRanksStayAscending(t *testing.T) {
	c := NewContainer([]Card{
		{Suit: Hearts, Rank: Ace},
		{Suit: Hearts, Rank: Two},
		{Suit: Hearts, Rank: Ten},
	})
	ranks := c.Ranks(Hearts)
	for i := 1; i < len(ranks); i++ {
		if ranks[i-1] >= ranks[i] {
			t.Fatalf("ranks not ascending: %v", ranks)
		}
	}
}

func TestContainerCopyIsIndependent(t *testing.T) {
	c := NewContainer([]Card{{Suit: Clubs, Rank: Five}, {Suit: Clubs, Rank: Six}})
	dup := c.Copy()
	if err := dup.RemoveCard(Card{Suit: Clubs, Rank: Five}); err != nil {
		t.Fatal(err)
	}
	if !c.HasCard(Card{Suit: Clubs, Rank: Five}) {
		t.Error("removal from the copy leaked into the original")
	}
}

func TestContainerFromCodes(t *testing.T) {
	c, err := ContainerFromCodes([]string{"02", "212", "314"})
	if err != nil {
		t.Fatal(err)
	}
	if !c.HasCard(TwoOfClubs) || !c.HasCard(QueenOfSpades) || !c.HasCard(Card{Suit: Hearts, Rank: Ace}) {
		t.Error("decoded container is missing cards")
	}

	if _, err := ContainerFromCodes([]string{"02", "bogus"}); err == nil {
		t.Error("expected an error for a malformed code")
	}
}

func TestHasAnySuit(t *testing.T) {
	c := NewContainer([]Card{{Suit: Hearts, Rank: Seven}})
	if c.HasAnySuit(Clubs, Diamonds, Spades) {
		t.Error("container has no non-heart suits")
	}
	if !c.HasAnySuit(Clubs, Hearts) {
		t.Error("container should match on hearts")
	}
}
