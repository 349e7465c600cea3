package mux

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"videopoker-server/pkg/playable/videopoker"
	"videopoker-server/pkg/room"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func Test_remoteAddr(t *testing.T) {
	r := &http.Request{RemoteAddr: "127.0.0.1:5000"}
	assert.Equal(t, "127.0.0.1", remoteAddr(r))

	r.RemoteAddr = "[::1]:5000"
	assert.Equal(t, "[::1]", remoteAddr(r))
}

func Test_parsePaginationOptions(t *testing.T) {
	req := func(queryString string) *http.Request {
		req, _ := http.NewRequest(http.MethodGet, "https://example.domain/"+queryString, nil)
		return req
	}

	start, rows, err := parsePaginationOptions(req(""))
	assert.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, defaultRows, rows)

	start, rows, err = parsePaginationOptions(req("?start=10&rows=25"))
	assert.NoError(t, err)
	assert.Equal(t, 10, start)
	assert.Equal(t, 25, rows)

	start, rows, err = parsePaginationOptions(req("?start=-1&rows=25"))
	assert.EqualError(t, err, "start cannot be less than zero")
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, rows)

	start, rows, err = parsePaginationOptions(req("?start=0&rows=0"))
	assert.EqualError(t, err, "rows must be greater than zero")
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, rows)

	start, rows, err = parsePaginationOptions(req(fmt.Sprintf("?start=0&rows=%d", maxRows+1)))
	assert.EqualError(t, err, fmt.Sprintf("rows cannot be greater than %d", maxRows))
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, rows)
}

func Test_writeGameError(t *testing.T) {
	tests := []struct {
		err        error
		statusCode int
	}{
		{videopoker.BetError{Amount: 10, Min: 1, Max: 5}, http.StatusBadRequest},
		{videopoker.PositionError(6), http.StatusBadRequest},
		{videopoker.OptionsError("test hand cannot have more than five cards"), http.StatusBadRequest},
		{videopoker.StateError{Action: "settle", State: videopoker.StateAwaitingBet}, http.StatusConflict},
		{videopoker.ErrTooManyExchanges, http.StatusConflict},
		{videopoker.ErrGameOver, http.StatusConflict},
		{room.ErrTooManySessions, http.StatusServiceUnavailable},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, test := range tests {
		w := httptest.NewRecorder()
		writeGameError(w, test.err)
		assert.Equal(t, test.statusCode, w.Code, test.err.Error())

		var errObj errorResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&errObj))
		assert.Equal(t, test.statusCode, errObj.StatusCode)
		if test.statusCode < 500 {
			assert.Equal(t, test.err.Error(), errObj.Message)
		} else {
			assert.Equal(t, http.StatusText(test.statusCode), errObj.Message)
		}
	}
}

// newTestServer returns a server whose sessions are shuffled with a fixed seed
func newTestServer(maxSessions int) (*httptest.Server, *room.PitBoss) {
	pitBoss := room.NewPitBoss(logrus.StandardLogger(), videopoker.DefaultOptions(), maxSessions, 42)
	return httptest.NewServer(NewMux("v1.2.3", pitBoss)), pitBoss
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertDelete(t *testing.T, ts *httptest.Server, path string, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, nil, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case nil:
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode)
}
