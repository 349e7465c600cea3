package playable

import (
	"fmt"
	"time"
	"videopoker-server/pkg/deck"

	"github.com/google/uuid"
)

// LogMessage is a single entry in a game's log
type LogMessage struct {
	UUID    string      `json:"uuid"`
	Cards   []deck.Card `json:"cards,omitempty"`
	Message string      `json:"message"`
	Time    time.Time   `json:"time"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// CardsLogMessage returns a new LogMessage that shows cards
func CardsLogMessage(cards []deck.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(format, a...)
	lm.Cards = make([]deck.Card, len(cards))
	copy(lm.Cards, cards)

	return lm
}
