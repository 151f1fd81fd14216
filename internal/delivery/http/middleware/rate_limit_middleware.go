package middleware

import (
	"net/http"

	"hotel-listing/config"
	"hotel-listing/pkg/response"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware applies one token bucket to all incoming requests
type RateLimitMiddleware struct {
	limiter *rate.Limiter
}

// NewRateLimitMiddleware returns a limiter; a non-positive RPS disables limiting
func NewRateLimitMiddleware(cfg config.RateLimitConfig) *RateLimitMiddleware {
	if cfg.RPS <= 0 {
		return &RateLimitMiddleware{}
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &RateLimitMiddleware{limiter: rate.NewLimiter(rate.Limit(cfg.RPS), burst)}
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.limiter != nil && !m.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			response.Error(w, http.StatusTooManyRequests, "Too many requests", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
