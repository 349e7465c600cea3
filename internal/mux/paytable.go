package mux

import (
	"errors"
	"fmt"
	"net/http"
	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/poker"
)

func (m *Mux) getPayTable() http.HandlerFunc {
	rows := m.pitBoss.Options().PayTable.Rows()

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rows)
	}
}

type postEvaluatePayload struct {
	Cards []deck.Card `json:"cards"`
}

type postEvaluateResponse struct {
	Cards      []deck.Card `json:"cards"`
	Hand       poker.Hand  `json:"hand"`
	Multiplier int         `json:"multiplier"`
	Strength   int16       `json:"strength"`
}

func (m *Mux) postEvaluate() http.HandlerFunc {
	payTable := m.pitBoss.Options().PayTable

	return func(w http.ResponseWriter, r *http.Request) {
		var pp postEvaluatePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		for i, card := range pp.Cards {
			if deck.Hand(pp.Cards[:i]).HasCard(card) {
				writeJSONError(w, http.StatusBadRequest, fmt.Errorf("duplicate card: %s", card.Code()))
				return
			}
		}

		analyzer, err := poker.NewHandAnalyzer(pp.Cards)
		if err != nil {
			if errors.Is(err, poker.ErrInvalidHandSize) {
				writeJSONError(w, http.StatusBadRequest, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		strength, err := poker.Strength(pp.Cards)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		hand := analyzer.GetHand()
		writeJSON(w, http.StatusOK, postEvaluateResponse{
			Cards:      analyzer.Cards(),
			Hand:       hand,
			Multiplier: payTable.Multiplier(hand),
			Strength:   strength,
		})
	}
}
