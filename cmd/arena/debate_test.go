package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BerylCAtieno/nlvx-arena/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript(t *testing.T) {
	tr := &Transcript{}
	assert.Equal(t, "", tr.String())

	tr.Add("Optimist", "It helps.")
	tr.Add("Critic", "It hurts.")
	assert.Equal(t, "Optimist: It helps.\nCritic: It hurts.", tr.String())
}

func TestRunDebate_CarriesContext(t *testing.T) {
	var seen []models.DebateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.DebateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		seen = append(seen, req)
		_ = json.NewEncoder(w).Encode(models.DebateResponse{Success: true, Message: "point " + req.DebaterType, Debater: req.DebaterType})
	}))
	defer srv.Close()

	var spoken []string
	tr, err := runDebate(context.Background(), NewClient(srv.URL), "AI", "de", []string{"Optimist", "Critic"}, 2,
		func(name, _ string) { spoken = append(spoken, name) })
	require.NoError(t, err)

	assert.Equal(t, []string{"Optimist", "Critic", "Optimist", "Critic"}, spoken)
	require.Len(t, seen, 4)
	assert.Empty(t, seen[0].Context)
	assert.Equal(t, "Optimist: point Optimist", seen[1].Context)
	assert.Equal(t, "de", seen[3].DebateLanguage)
	assert.Equal(t, "Optimist: point Optimist\nCritic: point Critic\nOptimist: point Optimist\nCritic: point Critic", tr.String())
}

func TestClientTurn_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Failed to generate response", Details: "rate limited"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Turn(context.Background(), models.DebateRequest{Topic: "AI", DebaterType: "Critic", DebateLanguage: "en"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "rate limited", apiErr.Body.Details)
	assert.Equal(t, "429 Failed to generate response: rate limited", apiErr.Error())
}

func TestClientHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	assert.NoError(t, NewClient(srv.URL+"/").Health(context.Background()))
}
