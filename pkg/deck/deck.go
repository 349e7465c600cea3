package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"videopoker-server/internal/rng"
)

// Size is the number of cards in a deck
const Size = 52

// ErrEmptyDeck is an error when Deal() is attempted and there are no more cards
var ErrEmptyDeck = errors.New("deck is empty")

// Deck represents a playing deck
// Cards before the cursor have been dealt since the last shuffle
type Deck struct {
	cards  [Size]Card
	cursor int
	rng    rng.Generator
}

// New returns a new, shuffled deck of cards
// If gen is nil, a crypto generator is used
func New(gen rng.Generator) *Deck {
	if gen == nil {
		gen = rng.Crypto{}
	}

	d := &Deck{
		rng: gen,
	}

	d.buildDeck()
	d.Shuffle()
	return d
}

func (d *Deck) buildDeck() {
	i := 0
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			d.cards[i] = NewCard(suit, rank)
			i++
		}
	}
}

// Shuffle will put every card back in the deck and shuffle it (Fisher–Yates)
func (d *Deck) Shuffle() {
	d.cursor = 0

	for j := len(d.cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal will deal the next card
// If there are no more cards, ErrEmptyDeck is returned
func (d *Deck) Deal() (Card, error) {
	if d.cursor >= len(d.cards) {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[d.cursor]
	d.cursor++

	return card, nil
}

// CanDeal returns true if there are {want} cards left in the deck
func (d *Deck) CanDeal(want int) bool {
	return d.CardsLeft() >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.cards) - d.cursor
}

// HashCode returns a SHA1 hash code of the undealt cards
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.cards[d.cursor:] {
		_, _ = hash.Write([]byte(card.Code()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
