package poker

// PayTable maps a hand to its payout multiplier
type PayTable map[Hand]int

// DefaultPayTable is the standard video poker pay table
var DefaultPayTable = PayTable{
	RoyalFlush:    250,
	StraightFlush: 50,
	FourOfAKind:   25,
	FullHouse:     6,
	Flush:         5,
	Straight:      4,
	ThreeOfAKind:  3,
	TwoPairs:      2,
	OnePair:       1,
	NoPair:        0,
}

// PayTableRow is a single line of the pay table
type PayTableRow struct {
	Hand       Hand `json:"hand"`
	Multiplier int  `json:"multiplier"`
}

// Multiplier returns the multiplier for the hand
// Hands that are not in the table pay 0
func (p PayTable) Multiplier(hand Hand) int {
	return p[hand]
}

// MultiplierFor returns the multiplier for a hand label, i.e., "Full House"
// Unknown labels pay 0
func (p PayTable) MultiplierFor(label string) int {
	hand, ok := ParseHand(label)
	if !ok {
		return 0
	}

	return p.Multiplier(hand)
}

// Rows returns the pay table, best hand first
func (p PayTable) Rows() []PayTableRow {
	rows := make([]PayTableRow, 0, len(Hands))
	for _, hand := range Hands {
		rows = append(rows, PayTableRow{
			Hand:       hand,
			Multiplier: p.Multiplier(hand),
		})
	}

	return rows
}
