package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ternary/internal/config"
	"github.com/katalvlaran/ternary/internal/logging"
	"github.com/katalvlaran/ternary/internal/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newServer(t *testing.T, mutate ...func(*config.Config)) *server.Server {
	t.Helper()
	cfg := config.Default()
	for _, m := range mutate {
		m(&cfg)
	}

	return server.New(cfg, logging.Discard(), "test")
}

func do(t *testing.T, s *server.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

func TestHealth(t *testing.T) {
	w := do(t, newServer(t), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, server.HealthResponse{Status: "ok", Version: "test"}, decode[server.HealthResponse](t, w))
	assert.NotEmpty(t, w.Header().Get(server.HeaderRequestID))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(server.HeaderRequestID))
}

func TestWord(t *testing.T) {
	s := newServer(t)
	w := do(t, s, http.MethodGet, "/v1/word/LmLsLmLsL", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "LLmLsLmLs", body["canonical_word"])
	assert.Equal(t, "Right", body["chirality"])
	assert.Contains(t, body, "structure")
	assert.Contains(t, body, "lattice_basis")

	w = do(t, s, http.MethodGet, "/v1/word/Lm1", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	e := decode[server.ErrorResponse](t, w)
	assert.Equal(t, server.CodeInvalidInput, e.Code)
	assert.NotEmpty(t, e.RequestID)
}

func TestSignature(t *testing.T) {
	s := newServer(t)
	w := do(t, s, http.MethodPost, "/v1/signature", map[string]any{
		"signature": []int{5, 2, 2},
		"mode":      "mos_substitution",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[map[string]any](t, w)
	assert.Equal(t, "mos_substitution", resp["mode"])
	assert.Equal(t, []any{5.0, 2.0, 2.0}, resp["signature"])
	profiles := resp["profiles"].([]any)
	require.NotEmpty(t, profiles)
	assert.Equal(t, float64(len(profiles)), resp["count"])

	w = do(t, s, http.MethodPost, "/v1/signature", map[string]any{
		"signature": []int{5, 2, 2},
		"filters":   map[string]any{"complexity": map[string]any{"value": 1, "mode": "exactly"}},
		"limit":     3,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.LessOrEqual(t, len(decode[map[string]any](t, w)["profiles"].([]any)), 3)

	metrics := do(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, metrics.Code)
	text := metrics.Body.String()
	assert.Contains(t, text, `ternary_analyses_total{op="signature",outcome="ok"} 2`)
	assert.Contains(t, text, `ternary_scales_enumerated_total{kept="true"}`)
	assert.Contains(t, text, "ternary_analysis_duration_seconds_bucket")
}

func TestSignatureRejects(t *testing.T) {
	s := newServer(t)
	cases := []struct {
		name string
		body any
		code string
	}{
		{"negative count", map[string]any{"signature": []int{-1, 2, 2}}, server.CodeInvalidRequest},
		{"unknown mode", map[string]any{"signature": []int{5, 2, 2}, "mode": "every"}, server.CodeInvalidRequest},
		{"bad constraint", map[string]any{
			"signature": []int{5, 2, 2},
			"filters":   map[string]any{"max_variety": map[string]any{"value": -1}},
		}, server.CodeInvalidRequest},
		{"too long", map[string]any{"signature": []int{200, 50, 10}}, server.CodeInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/v1/signature", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, tc.code, decode[server.ErrorResponse](t, w).Code)
		})
	}
}

func TestSignatureTimeout(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Analysis.Timeout = time.Nanosecond })
	w := do(t, s, http.MethodPost, "/v1/signature", map[string]any{"signature": []int{5, 2, 2}})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, server.CodeTimeout, decode[server.ErrorResponse](t, w).Code)
}

func TestWordRoutesTimeout(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Analysis.Timeout = time.Nanosecond })
	for _, path := range []string{"/v1/word/LmLsLmLsL", "/v1/qp/LmLsLmLsL"} {
		w := do(t, s, http.MethodGet, path, nil)
		require.Equal(t, http.StatusServiceUnavailable, w.Code, path)
		assert.Equal(t, server.CodeTimeout, decode[server.ErrorResponse](t, w).Code, path)
	}
}

func TestQP(t *testing.T) {
	s := newServer(t)
	w := do(t, s, http.MethodGet, "/v1/qp/LmLsLmLsL", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[server.QPResponse](t, w)
	require.True(t, resp.Found)
	assert.Equal(t, 2, resp.Descriptor.Rows)
	assert.Equal(t, 5, resp.Descriptor.FullRow)

	w = do(t, s, http.MethodGet, "/v1/qp/000020100200012", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[server.QPResponse](t, w)
	assert.False(t, resp.Found)
	assert.Nil(t, resp.Descriptor)
}

func TestNecklaces(t *testing.T) {
	s := newServer(t)
	w := do(t, s, http.MethodGet, "/v1/necklaces?content=5,2", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[server.NecklacesResponse](t, w)
	assert.Equal(t, "3", resp.Total)
	assert.False(t, resp.Truncated)
	assert.ElementsMatch(t, []string{"LLLsLLs", "LLLLsLs", "LLLLLss"}, resp.Necklaces)

	w = do(t, s, http.MethodGet, "/v1/necklaces?content=5,2&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[server.NecklacesResponse](t, w)
	assert.True(t, resp.Truncated)
	assert.Len(t, resp.Necklaces, 2)

	for _, bad := range []string{"/v1/necklaces", "/v1/necklaces?content=a,1", "/v1/necklaces?content=300,1"} {
		w = do(t, s, http.MethodGet, bad, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}

func TestMetricsCanBeDisabled(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Server.Metrics = false })
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/metrics", nil).Code)

	var paths []string
	for _, r := range s.Routes() {
		paths = append(paths, r.Path)
	}
	assert.Contains(t, paths, "/v1/signature")
	assert.NotContains(t, paths, "/metrics")
}
