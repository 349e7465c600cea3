package poker

import "videopoker-server/pkg/deck"

// the only two runs that include an Ace, in sorted order
var (
	aceLowRanks = [HandSize]int{deck.Ace, 2, 3, 4, 5}
	royalRanks  = [HandSize]int{deck.Ace, 10, deck.Jack, deck.Queen, deck.King}
)

// isConsecutive returns true if each sorted rank is one more than the previous
func (h *HandAnalyzer) isConsecutive() bool {
	for i := 1; i < len(h.cards); i++ {
		if h.cards[i].Rank() != h.cards[i-1].Rank()+1 {
			return false
		}
	}

	return true
}

// hasRanks returns true if the sorted ranks are exactly ranks
func (h *HandAnalyzer) hasRanks(ranks [HandSize]int) bool {
	for i, card := range h.cards {
		if card.Rank() != ranks[i] {
			return false
		}
	}

	return true
}
