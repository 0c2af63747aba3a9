package service

import (
	"context"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"flip-advisor/domain"
	"flip-advisor/format"
	"flip-advisor/repository"
)

type DealService struct {
	cache  repository.CacheRepository
	logger *zap.SugaredLogger
	ttl    time.Duration
	newID  func() string
}

// NewDealService creates a DealService. A nil cache disables caching.
func NewDealService(
	cache repository.CacheRepository,
	logger *zap.SugaredLogger,
	ttl time.Duration,
) *DealService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &DealService{
		cache:  cache,
		logger: logger,
		ttl:    ttl,
		newID:  func() string { return uuid.New().String() },
	}
}

// Analyze validates the inputs, computes the metrics and flags, and
// formats them for display. Cache failures are logged, never returned.
func (s *DealService) Analyze(
	ctx context.Context,
	input domain.DealInputs,
) (domain.DealAnalysis, error) {

	if err := Validate(input); err != nil {
		return domain.DealAnalysis{}, err
	}

	key, keyErr := cacheKey(input)
	if keyErr != nil {
		s.logger.Warnw("failed to build cache key", "error", keyErr)
	}

	if s.cache != nil && keyErr == nil {
		if analysis, ok := s.lookup(ctx, key); ok {
			analysis.ID = s.newID()
			s.logger.Debugw("deal analysis served from cache", "key", key, "id", analysis.ID)
			return analysis, nil
		}
	}

	metrics := Compute(input)
	analysis := domain.DealAnalysis{
		ID:      s.newID(),
		Inputs:  input,
		Metrics: metrics,
		Flags:   EvaluateFlags(input, metrics),
		Display: format.Display(input, metrics),
	}

	s.logger.Infow("deal analyzed",
		"id", analysis.ID,
		"profit", metrics.Profit,
		"roi", metrics.ROI,
		"score", metrics.Score,
	)

	if s.cache != nil && keyErr == nil {
		s.store(ctx, key, analysis)
	}

	return analysis, nil
}

func (s *DealService) lookup(ctx context.Context, key string) (domain.DealAnalysis, bool) {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warnw("cache read failed", "key", key, "error", err)
		return domain.DealAnalysis{}, false
	}
	if !ok {
		return domain.DealAnalysis{}, false
	}

	var analysis domain.DealAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		s.logger.Warnw("discarding corrupt cache entry", "key", key, "error", err)
		return domain.DealAnalysis{}, false
	}
	return analysis, true
}

func (s *DealService) store(ctx context.Context, key string, analysis domain.DealAnalysis) {
	raw, err := json.Marshal(analysis)
	if err != nil {
		s.logger.Warnw("failed to encode analysis for cache", "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		s.logger.Warnw("cache write failed", "key", key, "error", err)
	}
}

// cacheKey hashes the canonical JSON encoding of the inputs.
func cacheKey(input domain.DealInputs) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64(raw), 16), nil
}
