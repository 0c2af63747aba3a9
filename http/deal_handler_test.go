package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flip-advisor/domain"
	"flip-advisor/repository"
	"flip-advisor/service"
)

func newTestHandler() *DealHandler {
	logger := zap.NewNop().Sugar()
	svc := service.NewDealService(repository.NewMemoryCache(), logger, time.Minute)
	return NewDealHandler(svc, logger)
}

func postDeal(h *DealHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(
		http.MethodPost,
		"/deal/analyze",
		bytes.NewBufferString(body),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.Analyze(w, req)
	return w
}

func TestAnalyzeHandler_OK(t *testing.T) {

	h := newTestHandler()

	w := postDeal(h, `{
		"purchase_price": 150000,
		"arv": 260000,
		"rehab_budget": 40000,
		"holding_months": 12,
		"buy_closing_pct": 0.03,
		"sell_closing_pct": 0.06,
		"annual_taxes": 3000,
		"annual_insurance": 1500,
		"monthly_utilities": 400
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var analysis domain.DealAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	assert.NotEmpty(t, analysis.ID)
	assert.InDelta(t, 40600, analysis.Metrics.Profit, 1e-9)
	assert.InDelta(t, 203800, analysis.Metrics.TotalInvestment, 1e-9)
	assert.Equal(t, "$40,600", analysis.Display.Profit)
}

func TestAnalyzeHandler_MethodNotAllowed(t *testing.T) {

	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/deal/analyze", nil)
	w := httptest.NewRecorder()

	h.Analyze(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestAnalyzeHandler_UnsupportedMediaType(t *testing.T) {

	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/deal/analyze", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	h.Analyze(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestAnalyzeHandler_BadRequest(t *testing.T) {

	h := newTestHandler()

	w := postDeal(h, `{invalid-json}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postDeal(h, `{"holding_months": 6, "unknown_field": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeHandler_ZeroHoldingMonthsRejected(t *testing.T) {

	h := newTestHandler()

	w := postDeal(h, `{"purchase_price": 100000, "arv": 200000, "holding_months": 0}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "holding_months")
}

func TestDefaultsHandler(t *testing.T) {

	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/deal/defaults", nil)
	w := httptest.NewRecorder()
	h.Defaults(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var in domain.DealInputs
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &in))
	assert.Equal(t, domain.DefaultDealInputs(), in)
}

func TestRouter_RateLimitAndHealth(t *testing.T) {

	logger := zap.NewNop().Sugar()
	limiter := NewRateLimiter(1, time.Hour)
	defer limiter.Stop()
	router := NewRouter(newTestHandler(), limiter, logger)

	req := httptest.NewRequest(http.MethodGet, "/deal/defaults", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Health checks are not rate limited.
	for i := 0; i < 3; i++ {
		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
