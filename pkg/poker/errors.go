package poker

import (
	"errors"
	"fmt"
)

// ErrInvalidHandSize is returned when a hand does not have exactly HandSize cards
var ErrInvalidHandSize = errors.New("invalid hand size")

// HandSizeError is an error on the number of cards in a hand
type HandSizeError int

func (h HandSizeError) Error() string {
	return fmt.Sprintf("expected %d cards, got %d", HandSize, int(h))
}

// Is allows errors.Is(err, ErrInvalidHandSize)
func (h HandSizeError) Is(target error) bool {
	return target == ErrInvalidHandSize
}
