package poker

import (
	"sort"
	"videopoker-server/pkg/deck"
)

// HandAnalyzer can analyze a five-card hand
type HandAnalyzer struct {
	cards    []deck.Card
	counts   [deck.MaxRank + 1]int
	flush    bool
	straight bool
	royal    bool
	quads    []int
	trips    []int
	pairs    []int

	hand Hand
}

// rule matches a hand against a single classification
type rule struct {
	hand    Hand
	matches func(h *HandAnalyzer) bool
}

// rules are checked in order, the first match wins
var rules = []rule{
	{RoyalFlush, func(h *HandAnalyzer) bool { return h.flush && h.royal }},
	{StraightFlush, func(h *HandAnalyzer) bool { return h.flush && h.straight }},
	{FourOfAKind, func(h *HandAnalyzer) bool { return len(h.quads) > 0 }},
	{FullHouse, func(h *HandAnalyzer) bool { return len(h.trips) > 0 && len(h.pairs) > 0 }},
	{Flush, func(h *HandAnalyzer) bool { return h.flush }},
	{Straight, func(h *HandAnalyzer) bool { return h.straight }},
	{ThreeOfAKind, func(h *HandAnalyzer) bool { return len(h.trips) > 0 }},
	{TwoPairs, func(h *HandAnalyzer) bool { return len(h.pairs) == 2 }},
	{OnePair, func(h *HandAnalyzer) bool { return len(h.pairs) == 1 }},
}

// Evaluate returns the classification of exactly five cards
func Evaluate(cards []deck.Card) (Hand, error) {
	h, err := NewHandAnalyzer(cards)
	if err != nil {
		return NoPair, err
	}

	return h.GetHand(), nil
}

// NewHandAnalyzer will return a new HandAnalyzer instance
// The cards are copied and never modified
func NewHandAnalyzer(cards []deck.Card) (*HandAnalyzer, error) {
	if len(cards) != HandSize {
		return nil, HandSizeError(len(cards))
	}

	newCards := make([]deck.Card, len(cards))
	copy(newCards, cards)

	// suit is the secondary key so equal ranks always land in the same order
	sort.Sort(deck.Hand(newCards))
	sort.Stable(sortByRank(newCards))

	h := &HandAnalyzer{
		cards: newCards,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h, nil
}

// analyzeHand fills in the rank counts, flush and straight flags
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	h.flush = true
	suit := h.cards[0].Suit()
	for _, card := range h.cards {
		if rank := card.Rank(); rank >= deck.MinRank && rank <= deck.MaxRank {
			h.counts[rank]++
		}

		if card.Suit() != suit {
			h.flush = false
		}
	}

	for rank := deck.MinRank; rank <= deck.MaxRank; rank++ {
		switch h.counts[rank] {
		case 4:
			h.quads = append(h.quads, rank)
		case 3:
			h.trips = append(h.trips, rank)
		case 2:
			h.pairs = append(h.pairs, rank)
		}
	}

	h.royal = h.hasRanks(royalRanks)
	h.straight = h.isConsecutive() || h.hasRanks(aceLowRanks) || h.royal
}

// calculateHand will determine the best hand
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	h.hand = NoPair
	for _, r := range rules {
		if r.matches(h) {
			h.hand = r.hand
			return
		}
	}
}

// GetHand will return the classification of the hand
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// Cards returns the cards sorted by rank
func (h *HandAnalyzer) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// IsFlush returns true if every card has the same suit
func (h *HandAnalyzer) IsFlush() bool {
	return h.flush
}

// IsStraight returns true if the ranks form a straight (Ace can play low or high)
func (h *HandAnalyzer) IsStraight() bool {
	return h.straight
}

// GetFourOfAKind will return the rank of the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetThreeOfAKind will return the rank of the three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetPairs will return the ranks of every pair, lowest first
func (h *HandAnalyzer) GetPairs() []int {
	pairs := make([]int, len(h.pairs))
	copy(pairs, h.pairs)
	return pairs
}

type sortByRank []deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Rank() < s[j].Rank()
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
