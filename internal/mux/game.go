package mux

import (
	"net/http"
	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/playable/videopoker"
	"videopoker-server/pkg/room"

	"github.com/sirupsen/logrus"
)

func (m *Mux) getGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, m.pitBoss.Sessions(start, rows))
	}
}

type postGamePayload struct {
	TestHand []deck.Card `json:"testHand"`
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGamePayload
		if r.ContentLength != 0 && !decodeRequest(w, r, &pp) {
			return
		}

		session, err := m.pitBoss.OpenSession(pp.TestHand)
		if err != nil {
			writeGameError(w, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"session":    session.UUID,
			"remoteAddr": remoteAddr(r),
		}).Debug("game created")

		m.writeSession(w, http.StatusCreated, session, nil)
	}
}

func (m *Mux) getGameUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.writeSession(w, http.StatusOK, sessionFromContext(r), nil)
	})
}

func (m *Mux) deleteGameUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromContext(r)
		if !m.pitBoss.CloseSession(session.UUID) {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

type postGameUUIDBetPayload struct {
	Amount float64 `json:"amount"`
}

func (m *Mux) postGameUUIDBet() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var pp postGameUUIDBetPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		m.writeSession(w, http.StatusOK, sessionFromContext(r), func(game *videopoker.Game) error {
			return game.Bet(pp.Amount)
		})
	})
}

type postGameUUIDExchangePayload struct {
	Positions []int `json:"positions"`
}

func (m *Mux) postGameUUIDExchange() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var pp postGameUUIDExchangePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		m.writeSession(w, http.StatusOK, sessionFromContext(r), func(game *videopoker.Game) error {
			return exchange(game, pp.Positions)
		})
	})
}

// exchange replaces the cards at each position, in order
// Every position is checked before the first card is replaced so a bad request leaves the hand alone
func exchange(game *videopoker.Game, positions []int) error {
	if state := game.State(); state != videopoker.StateHandDealt && state != videopoker.StateExchangePhase {
		return videopoker.StateError{Action: "exchange", State: state}
	}

	for _, pos := range positions {
		if pos < 1 || pos > videopoker.HandSize {
			return videopoker.PositionError(pos)
		}
	}

	if len(positions) > game.ExchangesLeft() {
		return videopoker.ErrTooManyExchanges
	}

	for _, pos := range positions {
		if _, err := game.Exchange(pos); err != nil {
			return err
		}
	}

	return nil
}

func (m *Mux) postGameUUIDSettle() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.writeSession(w, http.StatusOK, sessionFromContext(r), func(game *videopoker.Game) error {
			_, err := game.Settle()
			return err
		})
	})
}

// writeSession runs fn against the session's game and writes the resulting state
func (m *Mux) writeSession(w http.ResponseWriter, statusCode int, session *room.Session, fn func(game *videopoker.Game) error) {
	state, err := session.Do(fn)
	if err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, statusCode, state)
}

func sessionFromContext(r *http.Request) *room.Session {
	return r.Context().Value(ctxSessionKey).(*room.Session)
}
