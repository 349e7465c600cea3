package poker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_String(t *testing.T) {
	assert.Equal(t, "Royal Flush", RoyalFlush.String())
	assert.Equal(t, "Straight Flush", StraightFlush.String())
	assert.Equal(t, "Four of a Kind", FourOfAKind.String())
	assert.Equal(t, "Full House", FullHouse.String())
	assert.Equal(t, "Flush", Flush.String())
	assert.Equal(t, "Straight", Straight.String())
	assert.Equal(t, "Three of a Kind", ThreeOfAKind.String())
	assert.Equal(t, "Two Pairs", TwoPairs.String())
	assert.Equal(t, "One Pair", OnePair.String())
	assert.Equal(t, "No Pair", NoPair.String())
	assert.Equal(t, "Hand(42)", Hand(42).String())
}

func TestHands_order(t *testing.T) {
	assert.Len(t, Hands, 10)
	for i := 1; i < len(Hands); i++ {
		assert.True(t, Hands[i-1] > Hands[i])
	}
}

func TestParseHand(t *testing.T) {
	for _, h := range Hands {
		got, ok := ParseHand(h.String())
		assert.True(t, ok)
		assert.Equal(t, h, got)
	}

	h, ok := ParseHand("two pairs")
	assert.True(t, ok)
	assert.Equal(t, TwoPairs, h)

	_, ok = ParseHand("Five of a Kind")
	assert.False(t, ok)
}

func TestHand_JSON(t *testing.T) {
	b, err := json.Marshal(map[string]Hand{"hand": FullHouse})
	assert.NoError(t, err)
	assert.Equal(t, `{"hand":"Full House"}`, string(b))

	var h Hand
	assert.NoError(t, json.Unmarshal([]byte(`"Straight Flush"`), &h))
	assert.Equal(t, StraightFlush, h)
	assert.Error(t, json.Unmarshal([]byte(`"Nothing"`), &h))
}
