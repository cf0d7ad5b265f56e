package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

func withServer(t *testing.T, status int) *[]recordedRequest {
	t.Helper()
	var got []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery}
		if r.ContentLength > 0 {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&rec.Body))
		}
		got = append(got, rec)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	previous := host
	host = srv.URL
	t.Cleanup(func() { host = previous })
	return &got
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		reportDraw = false
		announceDry = false
	})
	return rootCmd.Execute()
}

func TestReportCommand(t *testing.T) {
	got := withServer(t, http.StatusCreated)

	require.NoError(t, run(t, "report", "3", "4", "--draw"))
	require.Len(t, *got, 1)
	req := (*got)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/matches", req.Path)
	assert.Equal(t, map[string]any{"winner_id": float64(3), "loser_id": float64(4), "draw": true}, req.Body)
}

func TestReportCommand_InvalidID(t *testing.T) {
	got := withServer(t, http.StatusCreated)

	assert.Error(t, run(t, "report", "three", "4"))
	assert.Empty(t, *got)
}

func TestAnnounceCommand_DryRun(t *testing.T) {
	got := withServer(t, http.StatusOK)

	require.NoError(t, run(t, "announce", "pairings", "--dry-run"))
	require.Len(t, *got, 1)
	assert.Equal(t, "/pairings/announce", (*got)[0].Path)
	assert.Equal(t, "dry_run=true", (*got)[0].Query)
}

func TestResetPlayersCommand(t *testing.T) {
	got := withServer(t, http.StatusNoContent)

	require.NoError(t, run(t, "reset-players"))
	assert.Equal(t, http.MethodDelete, (*got)[0].Method)
	assert.Equal(t, "/players", (*got)[0].Path)
}

func TestCommand_ServerErrorIsReturned(t *testing.T) {
	withServer(t, http.StatusConflict)

	assert.Error(t, run(t, "pairings"))
}
