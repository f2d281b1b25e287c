package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"opening-hours-normalizer/internal/vocab"
	"opening-hours-normalizer/pkg/config"
)

func testServer() *Server {
	cfg := &config.Config{
		Port:             "8080",
		Env:              "development",
		MetricsEnabled:   true,
		MetricsPath:      "/metrics",
		LogLevel:         "info",
		LogFormat:        "json",
		ReadTimeout:      5 * time.Second,
		WriteTimeout:     10 * time.Second,
		ShutdownTimeout:  15 * time.Second,
		DefaultLanguages: []string{"en"},
	}
	return New(cfg, zap.NewNop(), vocab.NewRegistry())
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestNormalizeEndpoint(t *testing.T) {
	s := testServer()
	rec := doJSON(t, s, http.MethodPost, "/normalize", map[string]any{
		"text": "Mon-Fri 9:00-17:00, Sat 10:00-14:00",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		OpeningHours string `json:"opening_hours"`
		Language     string `json:"language"`
		Matched      bool   `json:"matched"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Matched)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "Mo-Fr 09:00-17:00; Sa 10:00-14:00", got.OpeningHours)
}

func TestNormalizeEndpoint_ExplicitLanguages(t *testing.T) {
	s := testServer()
	rec := doJSON(t, s, http.MethodPost, "/normalize", map[string]any{
		"text":      "Montag bis Freitag 08:30-18:00",
		"languages": []string{"de"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Mo-Fr 08:30-18:00", got["opening_hours"])
	assert.Equal(t, "de", got["language"])
}

func TestNormalizeEndpoint_Unmatched(t *testing.T) {
	s := testServer()
	rec := doJSON(t, s, http.MethodPost, "/normalize", map[string]any{
		"text": "call for opening times",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, false, got["matched"])
}

func TestNormalizeEndpoint_BadRequests(t *testing.T) {
	s := testServer()

	rec := doJSON(t, s, http.MethodPost, "/normalize", map[string]any{"text": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/normalize", map[string]any{
		"text":      "Mon 9:00-17:00",
		"languages": []string{"xx"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/normalize", bytes.NewBufferString("{not json"))
	raw := httptest.NewRecorder()
	s.Router().ServeHTTP(raw, req)
	assert.Equal(t, http.StatusBadRequest, raw.Code)
}

func TestNormalizeBatchEndpoint(t *testing.T) {
	s := testServer()
	rec := doJSON(t, s, http.MethodPost, "/normalize/batch", []map[string]any{
		{"text": "Daily 8-22"},
		{"text": ""},
		{"text": "Sun closed"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var got []struct {
		OpeningHours string `json:"opening_hours"`
		Matched      bool   `json:"matched"`
		Error        string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "08:00-22:00", got[0].OpeningHours)
	assert.NotEmpty(t, got[1].Error)
	assert.Equal(t, "Su closed", got[2].OpeningHours)
}

func TestLanguagesEndpoint(t *testing.T) {
	s := testServer()
	rec := doJSON(t, s, http.MethodGet, "/languages", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got["languages"], "en")
	assert.Contains(t, got["languages"], "de")
	assert.Contains(t, got["languages"], "kr")
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer()
	rec := doJSON(t, s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	s := testServer()
	doJSON(t, s, http.MethodPost, "/normalize", map[string]any{"text": "Mon 9:00-17:00"})

	rec := doJSON(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "normalize_total")
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
