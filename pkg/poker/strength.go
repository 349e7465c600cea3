package poker

import (
	"fmt"
	"videopoker-server/pkg/deck"

	ph "github.com/paulhankin/poker"
)

// Strength returns a score for the five cards where a larger score is a better hand
// Unlike the classification, the score breaks ties inside a category (a pair of kings beats a pair of twos)
func Strength(cards []deck.Card) (int16, error) {
	if len(cards) != HandSize {
		return 0, HandSizeError(len(cards))
	}

	var five [HandSize]ph.Card
	for i, c := range cards {
		card, err := toPH(c)
		if err != nil {
			return 0, err
		}

		five[i] = card
	}

	return ph.Eval5(&five), nil
}

// convert deck.Card -> library card
// both sides use 1..13 with Ace as 1
func toPH(c deck.Card) (ph.Card, error) {
	var none ph.Card
	var s ph.Suit
	switch c.Suit() {
	case deck.Hearts:
		s = ph.Heart
	case deck.Diamonds:
		s = ph.Diamond
	case deck.Clubs:
		s = ph.Club
	case deck.Spades:
		s = ph.Spade
	default:
		return none, fmt.Errorf("invalid card: %s", c)
	}

	card, err := ph.MakeCard(s, ph.Rank(c.Rank()))
	if err != nil {
		return none, fmt.Errorf("invalid card %s: %w", c, err)
	}

	return card, nil
}
