package ratelimiting

import (
	"context"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/logging"
	ratelimiter "wellness/internal/core/domain/rate_limiter"
	"wellness/internal/core/services"
)

type hasRateLimitKey interface {
	GetRateLimitKey() string
}

type serviceWithRateLimiting[T hasRateLimitKey, S any] struct {
	log         logging.Logger
	rateLimiter ratelimiter.RateLimiter
	rateLimit   ratelimiter.Limit
	inner       services.Service[T, S]
}

// WithRateLimiting decorates the inner service with a per-key rate limit
// check. Limiter failures are treated as allowed.
func WithRateLimiting[T hasRateLimitKey, S any](
	log logging.Logger,
	rateLimiter ratelimiter.RateLimiter,
	rateLimit ratelimiter.Limit,
	inner services.Service[T, S],
) services.Service[T, S] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if rateLimiter == nil {
		panic(e.NewNilArgumentError("rateLimiter"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithRateLimiting[T, S]{
		log:         log,
		rateLimiter: rateLimiter,
		rateLimit:   rateLimit,
		inner:       inner,
	}
}

func (s *serviceWithRateLimiting[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	key := input.GetRateLimitKey()
	check := s.rateLimiter.CheckLimit(ctx, key, s.rateLimit)
	if !check.IsAllowed {
		s.log.Warning(ctx, "Rate limit exceeded.", logging.Entry("key", key))
		return result, ratelimiter.ErrRateLimitExceeded
	}
	return s.inner.Run(ctx, input)
}
