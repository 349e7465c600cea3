package videopoker

import (
	"fmt"
	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/poker"
)

// Options contains options for creating a new game of video poker
type Options struct {
	StartingBankroll float64
	MinBet           float64
	MaxBet           float64
	// ReshuffleEachRound shuffles the full deck before every round
	// If false, the deck is only reshuffled when it can no longer cover a round
	ReshuffleEachRound bool
	PayTable           poker.PayTable
	// TestHand is dealt (and filled from the deck) in the first round
	TestHand []deck.Card
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		StartingBankroll:   DefaultBankroll,
		MinBet:             MinBet,
		MaxBet:             5,
		ReshuffleEachRound: true,
		PayTable:           poker.DefaultPayTable,
	}
}

func (o Options) validate() error {
	if !(o.StartingBankroll >= 0) {
		return OptionsError("starting bankroll cannot be negative")
	}

	if !(o.MinBet >= MinBet) {
		return OptionsError("minimum bet must be at least 1")
	}

	if !(o.MaxBet >= o.MinBet) {
		return OptionsError("maximum bet cannot be less than the minimum bet")
	}

	if len(o.TestHand) > HandSize {
		return OptionsError("test hand cannot have more than five cards")
	}

	for i, card := range o.TestHand {
		if deck.Hand(o.TestHand[:i]).HasCard(card) {
			return OptionsError(fmt.Sprintf("duplicate card in test hand: %s", card.Code()))
		}
	}

	return nil
}
