package ratelimiting

import (
	"context"
	"testing"
	"wellness/internal/core/domain/logging"
	ratelimiter "wellness/internal/core/domain/rate_limiter"

	"github.com/stretchr/testify/require"
)

type testInput struct {
	Key string
}

func (i testInput) GetRateLimitKey() string {
	return i.Key
}

type testService struct {
	Calls int
}

func (s *testService) Run(ctx context.Context, input testInput) (string, error) {
	s.Calls++
	return "ok", nil
}

func TestAllowedRequestReachesInnerService(t *testing.T) {
	// Setup ---
	limiter := ratelimiter.NewTestRateLimiter()
	inner := &testService{}
	service := WithRateLimiting[testInput, string](
		logging.NewFakeLogger(),
		limiter,
		ratelimiter.Limit{Value: 5, Interval: ratelimiter.Minute},
		inner,
	)

	// Exercise ---
	result, err := service.Run(context.Background(), testInput{Key: "k"})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal("ok", result)
	assert.Equal(1, inner.Calls)
	assert.Equal([]string{"k"}, limiter.CheckedKeys)
}

func TestExceededLimitShortCircuits(t *testing.T) {
	// Setup ---
	limiter := ratelimiter.NewTestRateLimiter()
	limiter.DoNotAllow = true
	inner := &testService{}
	service := WithRateLimiting[testInput, string](
		logging.NewFakeLogger(),
		limiter,
		ratelimiter.Limit{Value: 5, Interval: ratelimiter.Minute},
		inner,
	)

	// Exercise ---
	_, err := service.Run(context.Background(), testInput{Key: "k"})

	// Verify ---
	assert := require.New(t)
	assert.ErrorIs(err, ratelimiter.ErrRateLimitExceeded)
	assert.Equal(0, inner.Calls)
}
