package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayTable_Multiplier(t *testing.T) {
	a := assert.New(t)
	p := DefaultPayTable

	a.Equal(250, p.Multiplier(RoyalFlush))
	a.Equal(50, p.Multiplier(StraightFlush))
	a.Equal(25, p.Multiplier(FourOfAKind))
	a.Equal(6, p.Multiplier(FullHouse))
	a.Equal(5, p.Multiplier(Flush))
	a.Equal(4, p.Multiplier(Straight))
	a.Equal(3, p.Multiplier(ThreeOfAKind))
	a.Equal(2, p.Multiplier(TwoPairs))
	a.Equal(1, p.Multiplier(OnePair))
	a.Equal(0, p.Multiplier(NoPair))
	a.Equal(0, p.Multiplier(Hand(99)))
}

func TestPayTable_MultiplierFor(t *testing.T) {
	a := assert.New(t)
	p := DefaultPayTable

	a.Equal(250, p.MultiplierFor("Royal Flush"))
	a.Equal(6, p.MultiplierFor("Full House"))
	a.Equal(2, p.MultiplierFor("Two Pairs"))
	a.Equal(0, p.MultiplierFor("No Pair"))
	a.Equal(0, p.MultiplierFor("Five Aces"))
	a.Equal(0, p.MultiplierFor(""))
}

func TestPayTable_Rows(t *testing.T) {
	rows := DefaultPayTable.Rows()
	assert.Len(t, rows, 10)
	assert.Equal(t, PayTableRow{Hand: RoyalFlush, Multiplier: 250}, rows[0])
	assert.Equal(t, PayTableRow{Hand: NoPair, Multiplier: 0}, rows[9])
}

func TestEvaluate_noPairPaysNothing(t *testing.T) {
	hand, err := Evaluate(cardsFromString(t, "c2,d5,h7,s9,c12"))
	assert.NoError(t, err)
	assert.Equal(t, NoPair, hand)
	assert.Equal(t, 0, DefaultPayTable.Multiplier(hand))
}
