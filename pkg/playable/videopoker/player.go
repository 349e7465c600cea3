package videopoker

import (
	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/poker"
)

// HandSize is the number of cards a player holds
const HandSize = poker.HandSize

// DefaultBankroll is the number of tokens a player starts with
const DefaultBankroll = 50.0

// MinBet is the smallest bet a player may place
const MinBet = 1.0

// Player holds a hand, a pending bet, and a bankroll
type Player struct {
	hand     deck.Hand
	bankroll float64
	bet      float64
	lastWin  float64
}

// NewPlayer returns a new player with the given bankroll
func NewPlayer(bankroll float64) *Player {
	return &Player{
		hand:     make(deck.Hand, 0, HandSize),
		bankroll: bankroll,
	}
}

// PlaceBet deducts the amount from the bankroll and holds it as the pending bet
// The amount must be at least MinBet and no more than the bankroll (NaN is neither)
func (p *Player) PlaceBet(amount float64) error {
	if !(amount >= MinBet && amount <= p.bankroll) {
		return BetError{
			Amount: amount,
			Min:    MinBet,
			Max:    p.bankroll,
		}
	}

	p.bet = amount
	p.bankroll -= amount
	return nil
}

// Settle pays out the pending bet times the multiplier and clears the bet
// The bet was already deducted, so a multiplier of 0 loses it and 1 returns it
func (p *Player) Settle(multiplier int) float64 {
	p.lastWin = p.bet * float64(multiplier)
	p.bankroll += p.lastWin
	p.bet = 0

	return p.lastWin
}

// AddCard adds a card to the hand
// Returns false if the hand is already full
func (p *Player) AddCard(card deck.Card) bool {
	if len(p.hand) >= HandSize {
		return false
	}

	p.hand = append(p.hand, card)
	return true
}

// Exchange replaces the card at the 1-based position
func (p *Player) Exchange(position int, card deck.Card) error {
	if position < 1 || position > HandSize {
		return PositionError(position)
	}

	if position <= len(p.hand) {
		p.hand[position-1] = card
		return nil
	}

	// a short hand is filled instead
	p.AddCard(card)
	return nil
}

// RemoveCard removes the card from the hand
// Returns false if the player does not hold the card
func (p *Player) RemoveCard(card deck.Card) bool {
	return p.hand.Discard(card) > 0
}

// CardAt returns the card at the 1-based position
func (p *Player) CardAt(position int) (deck.Card, error) {
	if position < 1 || position > len(p.hand) {
		return deck.Card{}, PositionError(position)
	}

	return p.hand[position-1], nil
}

// ClearHand removes every card from the hand
func (p *Player) ClearHand() {
	p.hand = p.hand[:0]
}

// Hand returns a copy of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// Bankroll returns the player's current balance
func (p *Player) Bankroll() float64 {
	return p.bankroll
}

// Bet returns the pending bet
func (p *Player) Bet() float64 {
	return p.bet
}

// LastWin returns the amount paid out by the last settlement
func (p *Player) LastWin() float64 {
	return p.lastWin
}
