package mux

import (
	"testing"
	"videopoker-server/pkg/poker"

	"github.com/stretchr/testify/assert"
)

func Test_getPayTable(t *testing.T) {
	ts, _ := newTestServer(0)
	defer ts.Close()

	var rows []poker.PayTableRow
	assertGet(t, ts, "/paytable", &rows, 200)
	assert.Equal(t, poker.DefaultPayTable.Rows(), rows)
	if assert.Len(t, rows, 10) {
		assert.Equal(t, poker.PayTableRow{Hand: poker.RoyalFlush, Multiplier: 250}, rows[0])
		assert.Equal(t, poker.PayTableRow{Hand: poker.NoPair, Multiplier: 0}, rows[9])
	}
}

func Test_postEvaluate(t *testing.T) {
	a := assert.New(t)
	ts, _ := newTestServer(0)
	defer ts.Close()

	var resp postEvaluateResponse
	assertPost(t, ts, "/evaluate", map[string]interface{}{"cards": []string{"s5", "h2", "c5", "d5", "s2"}}, &resp, 200)
	a.Equal(poker.FullHouse, resp.Hand)
	a.Equal(6, resp.Multiplier)
	a.NotZero(resp.Strength)
	if a.Len(resp.Cards, 5) {
		a.Equal("h2", resp.Cards[0].Code())
		a.Equal("s5", resp.Cards[4].Code())
	}

	resp = postEvaluateResponse{}
	assertPost(t, ts, "/evaluate", `{"cards":["c1","h10","d11","s12","c13"]}`, &resp, 200)
	a.Equal(poker.Straight, resp.Hand)
	a.Equal(4, resp.Multiplier)

	resp = postEvaluateResponse{}
	assertPost(t, ts, "/evaluate", `{"cards":["c2","d5","h7","s9","c12"]}`, &resp, 200)
	a.Equal(poker.NoPair, resp.Hand)
	a.Equal(0, resp.Multiplier)
}

func Test_postEvaluate_errors(t *testing.T) {
	ts, _ := newTestServer(0)
	defer ts.Close()

	var errObj errorResponse
	assertPost(t, ts, "/evaluate", `{"cards":["s1","s2","s3","s4"]}`, &errObj, 400)
	assert.Equal(t, "expected 5 cards, got 4", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate", `{"cards":["s1","s2","s3","s4","x9"]}`, &errObj, 400)
	assert.Equal(t, `invalid card code: "x9"`, errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate", `{"cards":["s1","s2","s3","s4","S1"]}`, &errObj, 400)
	assert.Equal(t, "duplicate card: s1", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate", `{"cards":`, &errObj, 400)
	assert.Equal(t, 400, errObj.StatusCode)
}
