package videopoker

import (
	"fmt"
	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/playable"
	"videopoker-server/pkg/poker"
)

// State is the state of the current round
type State int

// round states
const (
	StateAwaitingBet State = iota
	StateHandDealt
	StateExchangePhase
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateAwaitingBet:
		return "awaiting bet"
	case StateHandDealt:
		return "hand dealt"
	case StateExchangePhase:
		return "exchange phase"
	case StateSettled:
		return "settled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MarshalText encodes the state as its name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes the state from its name
func (s *State) UnmarshalText(text []byte) error {
	for state := StateAwaitingBet; state <= StateSettled; state++ {
		if state.String() == string(text) {
			*s = state
			return nil
		}
	}

	return fmt.Errorf("unknown state: %q", text)
}

// Result is the outcome of a settled round
type Result struct {
	Round      int        `json:"round"`
	Cards      deck.Hand  `json:"cards"`
	Hand       poker.Hand `json:"hand"`
	Multiplier int        `json:"multiplier"`
	Bet        float64    `json:"bet"`
	Payout     float64    `json:"payout"`
	Bankroll   float64    `json:"bankroll"`
	Strength   int16      `json:"strength"`
}

// GameState is the current state of the game
type GameState struct {
	State         State                  `json:"state"`
	Round         int                    `json:"round"`
	Hand          deck.Hand              `json:"hand"`
	Bankroll      float64                `json:"bankroll"`
	Bet           float64                `json:"bet"`
	MinBet        float64                `json:"minBet"`
	MaxBet        float64                `json:"maxBet"`
	ExchangesLeft int                    `json:"exchangesLeft"`
	CardsLeft     int                    `json:"cardsLeft"`
	IsOver        bool                   `json:"isOver"`
	LastResult    *Result                `json:"lastResult"`
	Log           []*playable.LogMessage `json:"log"`
}

// GetGameState returns a snapshot of the game
func (g *Game) GetGameState() *GameState {
	logs := make([]*playable.LogMessage, len(g.logs))
	copy(logs, g.logs)

	return &GameState{
		State:         g.state,
		Round:         g.round,
		Hand:          g.player.Hand(),
		Bankroll:      g.player.Bankroll(),
		Bet:           g.player.Bet(),
		MinBet:        g.options.MinBet,
		MaxBet:        g.options.MaxBet,
		ExchangesLeft: g.ExchangesLeft(),
		CardsLeft:     g.deck.CardsLeft(),
		IsOver:        g.IsOver(),
		LastResult:    g.lastResult,
		Log:           logs,
	}
}
