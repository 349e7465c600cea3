package videopoker

import (
	"fmt"
	"math"
	"videopoker-server/internal/rng"
	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/playable"
	"videopoker-server/pkg/poker"

	"github.com/sirupsen/logrus"
)

// cardsPerRound is the most cards a single round can use (a full hand plus a full exchange)
const cardsPerRound = HandSize * 2

// maxLogs is the number of log messages kept
const maxLogs = 100

// Game is a single-player game of video poker
type Game struct {
	options Options
	deck    *deck.Deck
	player  *Player
	logger  logrus.FieldLogger

	state      State
	round      int
	exchanges  int
	testHand   []deck.Card
	lastResult *Result
	logs       []*playable.LogMessage
}

// NewGame returns a new game
// The deck is shuffled with gen; if gen is nil, a crypto generator is used
// If logger is nil, the standard logger is used
func NewGame(logger logrus.FieldLogger, gen rng.Generator, options Options) (*Game, error) {
	if err := options.validate(); err != nil {
		return nil, err
	}

	if options.PayTable == nil {
		options.PayTable = poker.DefaultPayTable
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	d := deck.New(gen)
	g := &Game{
		options:  options,
		deck:     d,
		player:   NewPlayer(options.StartingBankroll),
		logger:   logger,
		state:    StateAwaitingBet,
		testHand: options.TestHand,
	}

	g.logger.WithField("deck", d.HashCode()).Debug("deck shuffled")
	return g, nil
}

// Bet places the bet for a new round and deals the hand
func (g *Game) Bet(amount float64) error {
	if g.state != StateAwaitingBet && g.state != StateSettled {
		return StateError{Action: "bet", State: g.state}
	}

	if g.IsOver() {
		return ErrGameOver
	}

	maxBet := math.Min(g.options.MaxBet, g.player.Bankroll())
	if !(amount >= g.options.MinBet && amount <= maxBet) {
		return BetError{
			Amount: amount,
			Min:    g.options.MinBet,
			Max:    maxBet,
		}
	}

	if err := g.player.PlaceBet(amount); err != nil {
		return err
	}

	g.round++
	g.exchanges = 0
	g.lastResult = nil

	if err := g.dealHand(); err != nil {
		return err
	}

	g.state = StateHandDealt

	hand := g.player.Hand()
	g.logger.WithFields(logrus.Fields{
		"round":    g.round,
		"bet":      amount,
		"bankroll": g.player.Bankroll(),
		"hand":     hand.String(),
	}).Info("hand dealt")
	g.addLog(playable.CardsLogMessage(hand, "Bet %g tokens", amount))

	return nil
}

// dealHand clears the player's hand and deals a new one
func (g *Game) dealHand() error {
	if g.round > 1 && (g.options.ReshuffleEachRound || !g.deck.CanDeal(cardsPerRound)) {
		g.deck.Shuffle()
		g.logger.WithField("deck", g.deck.HashCode()).Debug("deck shuffled")
	}

	g.player.ClearHand()

	for _, card := range g.testHand {
		g.player.AddCard(card)
	}
	g.testHand = nil

	for len(g.player.hand) < HandSize {
		card, err := g.deck.Deal()
		if err != nil {
			return fmt.Errorf("could not deal hand: %w", err)
		}

		g.player.AddCard(card)
	}

	return nil
}

// Exchange replaces the card at the 1-based position with the next card in the deck
func (g *Game) Exchange(position int) (deck.Card, error) {
	if g.state != StateHandDealt && g.state != StateExchangePhase {
		return deck.Card{}, StateError{Action: "exchange", State: g.state}
	}

	if position < 1 || position > HandSize {
		return deck.Card{}, PositionError(position)
	}

	if g.exchanges >= HandSize {
		return deck.Card{}, ErrTooManyExchanges
	}

	card, err := g.deck.Deal()
	if err != nil {
		return deck.Card{}, fmt.Errorf("could not exchange card: %w", err)
	}

	old, _ := g.player.CardAt(position)
	if err := g.player.Exchange(position, card); err != nil {
		return deck.Card{}, err
	}

	g.exchanges++
	g.state = StateExchangePhase

	g.logger.WithFields(logrus.Fields{
		"round":    g.round,
		"position": position,
		"old":      old.Code(),
		"new":      card.Code(),
	}).Debug("card exchanged")
	g.addLog(playable.CardsLogMessage([]deck.Card{card}, "Exchanged %s", old))

	return card, nil
}

// Settle evaluates the hand and pays out the bet
func (g *Game) Settle() (*Result, error) {
	if g.state != StateHandDealt && g.state != StateExchangePhase {
		return nil, StateError{Action: "settle", State: g.state}
	}

	cards := g.player.Hand()
	hand, err := poker.Evaluate(cards)
	if err != nil {
		return nil, err
	}

	strength, err := poker.Strength(cards)
	if err != nil {
		return nil, err
	}

	multiplier := g.options.PayTable.Multiplier(hand)
	bet := g.player.Bet()
	payout := g.player.Settle(multiplier)

	g.state = StateSettled
	g.lastResult = &Result{
		Round:      g.round,
		Cards:      cards,
		Hand:       hand,
		Multiplier: multiplier,
		Bet:        bet,
		Payout:     payout,
		Bankroll:   g.player.Bankroll(),
		Strength:   strength,
	}

	g.logger.WithFields(logrus.Fields{
		"round":      g.round,
		"hand":       hand.String(),
		"multiplier": multiplier,
		"payout":     payout,
		"bankroll":   g.player.Bankroll(),
	}).Info("round settled")
	g.addLog(playable.CardsLogMessage(cards, "%s pays %d×, won %g tokens", hand, multiplier, payout))

	return g.lastResult, nil
}

// IsOver returns true if the player can no longer cover the minimum bet
func (g *Game) IsOver() bool {
	if g.state != StateAwaitingBet && g.state != StateSettled {
		return false
	}

	return g.player.Bankroll() < g.options.MinBet
}

// State returns the state of the current round
func (g *Game) State() State {
	return g.state
}

// Round returns the current round number, starting at 1
func (g *Game) Round() int {
	return g.round
}

// Hand returns a copy of the player's hand
func (g *Game) Hand() deck.Hand {
	return g.player.Hand()
}

// Bankroll returns the player's bankroll
func (g *Game) Bankroll() float64 {
	return g.player.Bankroll()
}

// ExchangesLeft returns how many more cards can be exchanged this round
func (g *Game) ExchangesLeft() int {
	if g.state != StateHandDealt && g.state != StateExchangePhase {
		return 0
	}

	return HandSize - g.exchanges
}

// Options returns the options the game was created with
func (g *Game) Options() Options {
	return g.options
}

// LastResult returns the result of the last settled round, or nil
func (g *Game) LastResult() *Result {
	return g.lastResult
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Video Poker"
}

func (g *Game) addLog(lm *playable.LogMessage) {
	g.logs = append(g.logs, lm)
	if n := len(g.logs); n > maxLogs {
		g.logs = g.logs[n-maxLogs:]
	}
}
