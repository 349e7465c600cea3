package deck

import (
	"testing"
	"videopoker-server/internal/rng"

	"github.com/stretchr/testify/assert"
)

// fixedGenerator always returns the same offset from the top of the range
type fixedGenerator struct {
	top bool
}

func (f fixedGenerator) Intn(n int) int {
	if f.top {
		return n - 1
	}

	return 0
}

func TestNew(t *testing.T) {
	d := New(fixedGenerator{top: true})

	assert.Equal(t, 52, d.CardsLeft())

	// swapping every card with itself keeps the build order
	card, err := d.Deal()
	assert.NoError(t, err)
	assert.Equal(t, NewCard(Hearts, Ace), card)

	for i := 0; i < 50; i++ {
		_, _ = d.Deal()
	}

	card, err = d.Deal()
	assert.NoError(t, err)
	assert.Equal(t, NewCard(Spades, King), card)
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	// always swapping with the first position rotates the deck left by one
	d := New(fixedGenerator{})
	card, _ := d.Deal()
	a.Equal(NewCard(Hearts, 2), card)

	for i := 0; i < 50; i++ {
		_, _ = d.Deal()
	}

	card, _ = d.Deal()
	a.Equal(NewCard(Hearts, Ace), card)
}

func TestDeck_ShuffleSeeded(t *testing.T) {
	a := assert.New(t)

	d1 := New(rng.NewSeeded(1))
	d2 := New(rng.NewSeeded(1))
	d3 := New(rng.NewSeeded(2))

	a.Equal(d1.HashCode(), d2.HashCode())
	a.NotEqual(d1.HashCode(), d3.HashCode())

	before := d1.HashCode()
	d1.Shuffle()
	a.NotEqual(before, d1.HashCode())
}

func TestDeck_Deal(t *testing.T) {
	d := New(nil)

	if !d.CanDeal(52) {
		t.Errorf("expected CanDeal(52) to be true")
	}

	if d.CanDeal(53) {
		t.Errorf("expected CanDeal(53) to be false")
	}

	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		card, err := d.Deal()
		assert.NoError(t, err)
		assert.True(t, card.IsValid())
		assert.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}

	assert.Len(t, seen, 52)
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			assert.True(t, seen[NewCard(suit, rank)])
		}
	}

	assert.False(t, d.CanDeal(1))
	assert.Equal(t, 0, d.CardsLeft())

	card, err := d.Deal()
	assert.Equal(t, Card{}, card)
	assert.Equal(t, ErrEmptyDeck, err)

	d.Shuffle()
	if !d.CanDeal(52) {
		t.Errorf("expected Shuffle() to reshuffle the deck")
	}
}

func TestDeck_HashCode(t *testing.T) {
	d := New(rng.NewSeeded(3))
	full := d.HashCode()

	_, _ = d.Deal()
	assert.NotEqual(t, full, d.HashCode())
	assert.Len(t, d.HashCode(), 40)
}
