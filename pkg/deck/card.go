package deck

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit int

// suit constants
const (
	Hearts Suit = iota + 1
	Diamonds
	Clubs
	Spades
)

// Suits is every suit in deck order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// String returns the display name of the suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	default:
		return "Unknown Suit"
	}
}

// code is the single letter used in card codes
func (s Suit) code() string {
	switch s {
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// face cards
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

// lowest and highest rank
const (
	MinRank = Ace
	MaxRank = King
)

var rankNames = [...]string{
	"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

// Card is an individual playing card
// The zero value is not a valid card
type Card struct {
	suit Suit
	rank int
}

// NewCard returns a card of the given suit and rank
func NewCard(suit Suit, rank int) Card {
	return Card{
		suit: suit,
		rank: rank,
	}
}

// Suit returns the suit of the card
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the card, Ace is 1
func (c Card) Rank() int {
	return c.rank
}

// IsValid returns true if the card has a known suit and rank
func (c Card) IsValid() bool {
	return c.suit >= Hearts && c.suit <= Spades && c.rank >= MinRank && c.rank <= MaxRank
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.suit == card.suit && c.rank == card.rank
}

// Compare orders cards by suit, then by rank
func Compare(a, b Card) int {
	if a.suit != b.suit {
		if a.suit < b.suit {
			return -1
		}

		return 1
	}

	switch {
	case a.rank < b.rank:
		return -1
	case a.rank > b.rank:
		return 1
	default:
		return 0
	}
}

// String returns the display name, i.e., "Ace of Spades"
func (c Card) String() string {
	rank := "Unknown Rank"
	if c.rank >= MinRank && c.rank <= MaxRank {
		rank = rankNames[c.rank]
	}

	return fmt.Sprintf("%s of %s", rank, c.suit)
}

// Code returns the short code for a card, i.e., "s1" for the Ace of Spades
func (c Card) Code() string {
	return c.suit.code() + strconv.Itoa(c.rank)
}

// ParseCard returns a card from a code in the format <suit><rank>
// suit is one of [hdcs] (case-insensitive) and rank is 1–13.
// The second value is false if the code is not valid.
func ParseCard(code string) (Card, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) < 2 {
		return Card{}, false
	}

	var suit Suit
	switch code[0] {
	case 'h':
		suit = Hearts
	case 'd':
		suit = Diamonds
	case 'c':
		suit = Clubs
	case 's':
		suit = Spades
	default:
		return Card{}, false
	}

	rank, err := strconv.Atoi(code[1:])
	if err != nil || rank < MinRank || rank > MaxRank {
		return Card{}, false
	}

	return NewCard(suit, rank), true
}

// ParseCards parses a comma-separated list of card codes
func ParseCards(s string) ([]Card, error) {
	if strings.TrimSpace(s) == "" {
		return []Card{}, nil
	}

	codes := strings.Split(s, ",")
	cards := make([]Card, len(codes))
	for i, code := range codes {
		card, ok := ParseCard(code)
		if !ok {
			return nil, fmt.Errorf("invalid card code: %q", code)
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsToString will convert a slice of cards to a string in the format of h1,s13,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.Code()
	}

	return strings.Join(c, ",")
}

type cardJSON struct {
	Suit string `json:"suit"`
	Rank int    `json:"rank"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// MarshalJSON encodes the card with its code and display name
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{
		Suit: strings.ToLower(c.suit.String()),
		Rank: c.rank,
		Code: c.Code(),
		Name: c.String(),
	})
}

// UnmarshalJSON decodes a card from either a code string ("s1") or an object with a code
func (c *Card) UnmarshalJSON(b []byte) error {
	var code string
	if err := json.Unmarshal(b, &code); err != nil {
		var obj cardJSON
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}

		code = obj.Code
	}

	card, ok := ParseCard(code)
	if !ok {
		return fmt.Errorf("invalid card code: %q", code)
	}

	*c = card
	return nil
}
