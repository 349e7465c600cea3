package room

import (
	"sync"
	"time"
	"videopoker-server/pkg/playable/videopoker"
)

// Session is a single player's game
type Session struct {
	UUID    string
	Name    string
	Created time.Time

	mu   sync.Mutex
	game *videopoker.Game
}

// State is a snapshot of a session
type State struct {
	UUID    string    `json:"uuid"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
	*videopoker.GameState
}

// Do runs fn with exclusive access to the game and returns the state after fn
// The game is not safe for concurrent use, so every access must go through Do
func (s *Session) Do(fn func(game *videopoker.Game) error) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fn != nil {
		if err := fn(s.game); err != nil {
			return nil, err
		}
	}

	return &State{
		UUID:      s.UUID,
		Name:      s.Name,
		Created:   s.Created,
		GameState: s.game.GetGameState(),
	}, nil
}
