package videopoker

import (
	"errors"
	"fmt"
)

// ErrInvalidBet is returned when a bet is outside of the allowed range
var ErrInvalidBet = errors.New("invalid bet")

// ErrIndexOutOfRange is returned when a hand position is not 1–5
var ErrIndexOutOfRange = errors.New("position out of range")

// ErrInvalidState is returned when an action is attempted at the wrong point of a round
var ErrInvalidState = errors.New("action not allowed in the current state")

// ErrTooManyExchanges is returned when more than HandSize exchanges are attempted in a round
var ErrTooManyExchanges = errors.New("no exchanges left this round")

// ErrGameOver is returned when the bankroll cannot cover the minimum bet
var ErrGameOver = errors.New("not enough tokens to bet")

// ErrInvalidOptions is returned when a game cannot be created with the given options
var ErrInvalidOptions = errors.New("invalid options")

// BetError is an error on the bet amount
type BetError struct {
	Amount float64
	Min    float64
	Max    float64
}

func (b BetError) Error() string {
	return fmt.Sprintf("bet must be between %g and %g, got %g", b.Min, b.Max, b.Amount)
}

// Is allows errors.Is(err, ErrInvalidBet)
func (b BetError) Is(target error) bool {
	return target == ErrInvalidBet
}

// PositionError is an error on a 1-based hand position
type PositionError int

func (p PositionError) Error() string {
	return fmt.Sprintf("position must be between 1 and %d, got %d", HandSize, int(p))
}

// Is allows errors.Is(err, ErrIndexOutOfRange)
func (p PositionError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// StateError is an error when an action is attempted in the wrong state
type StateError struct {
	Action string
	State  State
}

func (s StateError) Error() string {
	return fmt.Sprintf("cannot %s while %s", s.Action, s.State)
}

// Is allows errors.Is(err, ErrInvalidState)
func (s StateError) Is(target error) bool {
	return target == ErrInvalidState
}

// OptionsError is an error on the options of a new game
type OptionsError string

func (o OptionsError) Error() string {
	return string(o)
}

// Is allows errors.Is(err, ErrInvalidOptions)
func (o OptionsError) Is(target error) bool {
	return target == ErrInvalidOptions
}
