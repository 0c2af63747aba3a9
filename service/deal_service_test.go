package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flip-advisor/domain"
	"flip-advisor/repository"
)

type MockCache struct {
	Data     map[string][]byte
	GetCalls int
	SetCalls int
	LastTTL  time.Duration
	ForceErr bool
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.GetCalls++
	if m.ForceErr {
		return nil, false, errors.New("cache down")
	}
	val, ok := m.Data[key]
	return val, ok, nil
}

func (m *MockCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.SetCalls++
	m.LastTTL = ttl
	if m.ForceErr {
		return errors.New("cache down")
	}
	m.Data[key] = value
	return nil
}

func newTestService(cache repository.CacheRepository) *DealService {
	return NewDealService(cache, zap.NewNop().Sugar(), time.Minute)
}

func TestAnalyze_ComputesAndCaches(t *testing.T) {

	cache := NewMockCache()
	svc := newTestService(cache)

	analysis, err := svc.Analyze(context.Background(), domain.DefaultDealInputs())
	require.NoError(t, err)

	assert.NotEmpty(t, analysis.ID)
	assert.InDelta(t, 45250, analysis.Metrics.Profit, 1e-9)
	assert.Equal(t, "$45,250", analysis.Display.Profit)
	assert.Equal(t, "22.7%", analysis.Display.ROI)
	assert.Len(t, analysis.Flags, 4)

	assert.Equal(t, 1, cache.SetCalls)
	assert.Equal(t, time.Minute, cache.LastTTL)
}

func TestAnalyze_CacheHitReturnsSameMetricsWithNewID(t *testing.T) {

	cache := NewMockCache()
	svc := newTestService(cache)
	ctx := context.Background()

	first, err := svc.Analyze(ctx, domain.DefaultDealInputs())
	require.NoError(t, err)

	second, err := svc.Analyze(ctx, domain.DefaultDealInputs())
	require.NoError(t, err)

	assert.Equal(t, first.Metrics, second.Metrics)
	assert.Equal(t, first.Flags, second.Flags)
	assert.NotEqual(t, first.ID, second.ID)
	// The hit must not write again.
	assert.Equal(t, 1, cache.SetCalls)
	assert.Equal(t, 2, cache.GetCalls)
}

func TestAnalyze_CorruptCacheEntryIsRecomputed(t *testing.T) {

	cache := NewMockCache()
	svc := newTestService(cache)

	key, err := cacheKey(domain.DefaultDealInputs())
	require.NoError(t, err)
	cache.Data[key] = []byte("{not json")

	analysis, err := svc.Analyze(context.Background(), domain.DefaultDealInputs())
	require.NoError(t, err)
	assert.InDelta(t, 45250, analysis.Metrics.Profit, 1e-9)
	assert.Equal(t, 1, cache.SetCalls)
}

func TestAnalyze_CacheFailureIsNotFatal(t *testing.T) {

	cache := NewMockCache()
	cache.ForceErr = true
	svc := newTestService(cache)

	analysis, err := svc.Analyze(context.Background(), domain.DefaultDealInputs())
	require.NoError(t, err)
	assert.InDelta(t, 45250, analysis.Metrics.Profit, 1e-9)
}

func TestAnalyze_InvalidInputSkipsCache(t *testing.T) {

	cache := NewMockCache()
	svc := newTestService(cache)

	in := domain.DefaultDealInputs()
	in.HoldingMonths = 0

	_, err := svc.Analyze(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidDeal)
	assert.Equal(t, 0, cache.GetCalls)
	assert.Equal(t, 0, cache.SetCalls)
}

func TestAnalyze_NilCache(t *testing.T) {

	svc := NewDealService(nil, zap.NewNop().Sugar(), 0)
	assert.Equal(t, DefaultCacheTTL, svc.ttl)

	analysis, err := svc.Analyze(context.Background(), domain.DefaultDealInputs())
	require.NoError(t, err)
	assert.Equal(t, 100.0, analysis.Metrics.Score)
}

func TestAnalyze_WithMemoryCache(t *testing.T) {

	cache := repository.NewMemoryCache()
	svc := newTestService(cache)
	ctx := context.Background()

	in := domain.DefaultDealInputs()
	in.UseFinancing = true

	_, err := svc.Analyze(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	in.HoldingMonths = 8
	_, err = svc.Analyze(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())
}
