package mux

import (
	"context"
	"net/http"
	"videopoker-server/pkg/room"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	ctxSessionKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux
func NewMux(version string, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/paytable").Handler(this.getPayTable())
		r.Methods(http.MethodPost).Path("/evaluate").Handler(this.postEvaluate())
		r.Methods(http.MethodGet).Path("/game").Handler(this.getGame())
		r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())
	}

	// requires an open session
	{
		r := this.Router.PathPrefix("/game/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		r.Use(this.sessionMiddleware)

		r.Methods(http.MethodGet).Path("").Handler(this.getGameUUID())
		r.Methods(http.MethodDelete).Path("").Handler(this.deleteGameUUID())
		r.Methods(http.MethodPost).Path("/bet").Handler(this.postGameUUIDBet())
		r.Methods(http.MethodPost).Path("/exchange").Handler(this.postGameUUIDExchange())
		r.Methods(http.MethodPost).Path("/settle").Handler(this.postGameUUIDSettle())
	}

	return this
}

func (m *Mux) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := gmux.Vars(r)["uuid"]
		session, ok := m.pitBoss.Session(uuid)
		if !ok {
			logrus.WithField("uuid", uuid).Debug("session not found")
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxSessionKey, session)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
