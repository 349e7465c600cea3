package poker

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards in a video poker hand
const HandSize = 5

// Hand is a poker hand classification, i.e., royal flush
type Hand int

// Constants for hand, weakest first
const (
	NoPair Hand = iota
	OnePair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Hands is every hand, best first
var Hands = []Hand{
	RoyalFlush,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPairs,
	OnePair,
	NoPair,
}

// String returns the string representation of a hand
func (h Hand) String() string {
	switch h {
	case NoPair:
		return "No Pair"
	case OnePair:
		return "One Pair"
	case TwoPairs:
		return "Two Pairs"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return fmt.Sprintf("Hand(%d)", int(h))
	}
}

// ParseHand returns the hand for a label (case-insensitive)
func ParseHand(label string) (Hand, bool) {
	label = strings.TrimSpace(label)
	for _, h := range Hands {
		if strings.EqualFold(h.String(), label) {
			return h, true
		}
	}

	return NoPair, false
}

// MarshalText encodes the hand as its label
func (h Hand) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText decodes a hand from its label
func (h *Hand) UnmarshalText(b []byte) error {
	hand, ok := ParseHand(string(b))
	if !ok {
		return fmt.Errorf("unknown hand: %q", string(b))
	}

	*h = hand
	return nil
}
