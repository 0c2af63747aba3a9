package http

import (
	"net/http"

	"go.uber.org/zap"
)

// NewRouter wires the deal routes behind the rate limiter.
func NewRouter(handler *DealHandler, limiter *RateLimiter, logger *zap.SugaredLogger) http.Handler {
	mux := http.NewServeMux()

	mux.Handle(
		"/deal/analyze",
		RateLimitMiddleware(limiter, logger, http.HandlerFunc(handler.Analyze)),
	)
	mux.Handle(
		"/deal/defaults",
		RateLimitMiddleware(limiter, logger, http.HandlerFunc(handler.Defaults)),
	)
	mux.HandleFunc("/healthz", Health)

	return mux
}
