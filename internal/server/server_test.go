package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numkit/seqcalc/internal/config"
	"github.com/numkit/seqcalc/internal/logging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(config.AppConfig{Addr: ":0"}, logging.NopLogger{})
}

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeSequence(t *testing.T, rec *httptest.ResponseRecorder) sequenceResponse {
	t.Helper()
	var resp sequenceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

func TestSequenceDefaults(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t), "/api/v1/sequence")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeSequence(t, rec)
	assert.Equal(t, "arithmetic", resp.Kind)
	assert.Equal(t, 1.0, resp.Parameters.FirstTerm)
	assert.Equal(t, 1.0, resp.Parameters.Step)
	assert.Equal(t, 10, resp.Parameters.Terms)
	require.Len(t, resp.Terms, 10)
	assert.Equal(t, 55.0, resp.Sum)
	assert.Equal(t, "55", resp.FormattedSum)
	assert.Nil(t, resp.InfiniteLimit)
}

func TestSequenceGeometric(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t), "/api/v1/sequence?kind=geometric&first=1&step=2&terms=5")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeSequence(t, rec)
	assert.Equal(t, "geometric", resp.Kind)
	assert.Equal(t, []float64{1, 2, 4, 8, 16}, resp.Terms)
	assert.Equal(t, 31.0, resp.Sum)
	assert.Equal(t, 16.0, resp.Stats.Last)
	assert.Equal(t, 6.2, resp.Stats.Average)
	assert.Nil(t, resp.InfiniteLimit, "divergent ratio must omit the limit")
	assert.NotContains(t, rec.Body.String(), "infiniteLimit")
}

func TestSequenceGeometricDefaultStep(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t), "/api/v1/sequence?kind=geometric")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeSequence(t, rec)
	assert.Equal(t, 2.0, resp.Parameters.Step, "geometric step should default to the common ratio 2")
}

func TestSequenceConvergentCarriesLimit(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t), "/api/v1/sequence?kind=geometric&first=2&step=0.5&terms=3")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeSequence(t, rec)
	require.NotNil(t, resp.InfiniteLimit)
	assert.Equal(t, 4.0, *resp.InfiniteLimit)
	assert.Equal(t, "3.50", resp.FormattedSum)
	assert.Equal(t, []string{"2", "1", "0.50"}, resp.FormattedTerms)
}

func TestSequenceRatioOne(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t), "/api/v1/sequence?kind=geometric&first=5&step=1&terms=4")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeSequence(t, rec)
	assert.Equal(t, 20.0, resp.Sum)
	assert.Nil(t, resp.InfiniteLimit)
}

func TestSequenceValidationRejections(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		target  string
		wantMsg string
	}{
		{
			name:    "zero terms",
			target:  "/api/v1/sequence?terms=0",
			wantMsg: "positive integer",
		},
		{
			name:    "negative terms",
			target:  "/api/v1/sequence?terms=-3",
			wantMsg: "positive integer",
		},
		{
			name:    "terms above the cap",
			target:  "/api/v1/sequence?terms=1001",
			wantMsg: "cannot exceed 1000",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := get(t, newTestServer(t), tt.target)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeError(t, rec).Error, tt.wantMsg)
		})
	}
}

func TestSequenceBadParameters(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		target  string
		wantMsg string
	}{
		{name: "unknown kind", target: "/api/v1/sequence?kind=fibonacci", wantMsg: "unknown sequence kind"},
		{name: "non-numeric first", target: "/api/v1/sequence?first=abc", wantMsg: "'first' must be a number"},
		{name: "non-numeric step", target: "/api/v1/sequence?step=abc", wantMsg: "'step' must be a number"},
		{name: "non-integer terms", target: "/api/v1/sequence?terms=2.5", wantMsg: "'terms' must be an integer"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := get(t, newTestServer(t), tt.target)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeError(t, rec).Error, tt.wantMsg)
		})
	}
}

func TestSequenceOverflowIsRecoverable(t *testing.T) {
	t.Parallel()
	rec := get(t, newTestServer(t), "/api/v1/sequence?kind=geometric&first=1e300&step=1e20&terms=5")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	assert.Contains(t, resp.Error, "an error occurred while generating the sequence")
	assert.Equal(t, "check your input values and try again", resp.Hint)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	// Generate some traffic first so the counters have values.
	get(t, srv, "/api/v1/sequence?kind=geometric")
	get(t, srv, "/api/v1/sequence?terms=0")

	rec := get(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `seqcalc_http_requests_total{path="/api/v1/sequence",status="200"} 1`)
	assert.Contains(t, body, `seqcalc_generations_total{kind="geometric"} 1`)
	assert.Contains(t, body, "seqcalc_validation_rejections_total 1")
}

func TestMetricsIndependentRegistries(t *testing.T) {
	t.Parallel()
	// Two servers in one process must not panic on duplicate registration.
	a := NewMetrics()
	b := NewMetrics()
	a.CountGeneration("arithmetic")
	b.CountRejection()
}
