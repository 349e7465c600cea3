package room

import (
	"errors"
	"sort"
	"sync"
	"time"
	"videopoker-server/internal/rng"
	"videopoker-server/internal/util"
	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/playable/videopoker"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrTooManySessions is returned when the pit boss cannot open another session
var ErrTooManySessions = errors.New("too many open sessions")

// PitBoss keeps track of every open video poker session
type PitBoss struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	maxSessions int

	options videopoker.Options
	seed    int64
	logger  logrus.FieldLogger
}

// NewPitBoss returns a new pit boss
// Every session plays with options; a non-zero seed makes each session's shuffles reproducible
func NewPitBoss(logger logrus.FieldLogger, options videopoker.Options, maxSessions int, seed int64) *PitBoss {
	return &PitBoss{
		sessions:    make(map[string]*Session),
		maxSessions: maxSessions,
		options:     options,
		seed:        seed,
		logger:      logger,
	}
}

// OpenSession starts a new game
// If testHand is not empty, it is dealt before any card from the deck in the first round
func (p *PitBoss) OpenSession(testHand []deck.Card) (*Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.maxSessions > 0 && len(p.sessions) >= p.maxSessions {
		return nil, ErrTooManySessions
	}

	id := uuid.New().String()
	logger := p.logger.WithField("session", id)

	options := p.options
	options.TestHand = testHand

	game, err := videopoker.NewGame(logger, rng.New(p.seed), options)
	if err != nil {
		return nil, err
	}

	s := &Session{
		UUID:    id,
		Name:    util.GetRandomName(),
		Created: time.Now(),
		game:    game,
	}

	p.sessions[id] = s
	logger.WithField("name", s.Name).Info("session opened")

	return s, nil
}

// Session returns the session with the given UUID
func (p *PitBoss) Session(id string) (*Session, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s, ok := p.sessions[id]
	return s, ok
}

// CloseSession removes the session
// Returns false if the session does not exist
func (p *PitBoss) CloseSession(id string) bool {
	p.mu.Lock()
	s, ok := p.sessions[id]
	delete(p.sessions, id)
	p.mu.Unlock()

	if !ok {
		return false
	}

	// waits for a request that is still playing the session
	state, _ := s.Do(nil)
	p.logger.WithFields(logrus.Fields{
		"session": id,
		"rounds":  state.Round,
	}).Info("session closed")

	return true
}

// Len returns the number of open sessions
func (p *PitBoss) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.sessions)
}

// Summary is a short description of a session
type Summary struct {
	UUID    string    `json:"uuid"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
}

// Sessions returns up to rows sessions, newest first, skipping the first start
func (p *PitBoss) Sessions(start, rows int) []Summary {
	p.mu.RLock()
	summaries := make([]Summary, 0, len(p.sessions))
	for _, s := range p.sessions {
		summaries = append(summaries, Summary{
			UUID:    s.UUID,
			Name:    s.Name,
			Created: s.Created,
		})
	}
	p.mu.RUnlock()

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].Created.Equal(summaries[j].Created) {
			return summaries[i].Created.After(summaries[j].Created)
		}

		return summaries[i].UUID < summaries[j].UUID
	})

	if start >= len(summaries) {
		return []Summary{}
	}

	summaries = summaries[start:]
	if rows < len(summaries) {
		summaries = summaries[:rows]
	}

	return summaries
}

// Options returns the options every session is played with
func (p *PitBoss) Options() videopoker.Options {
	return p.options
}
