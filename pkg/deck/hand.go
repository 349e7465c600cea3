package deck

import "strings"

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	return Compare(h[i], h[j]) < 0
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Discard removes every copy of the card and returns how many were removed
func (h *Hand) Discard(card Card) int {
	count := 0
	newHand := (*h)[:0]
	for _, c := range *h {
		if c.Equal(card) {
			count++
		} else {
			newHand = append(newHand, c)
		}
	}

	*h = newHand
	return count
}

// String returns the codes of the cards, i.e., "h1,s13"
func (h Hand) String() string {
	return CardsToString(h)
}

// DisplayString returns the display names of the cards separated by sep
func (h Hand) DisplayString(sep string) string {
	names := make([]string, len(h))
	for i, c := range h {
		names[i] = c.String()
	}

	return strings.Join(names, sep)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
