package http

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// callerLimiter keeps one token bucket per authenticated caller.
type callerLimiter struct {
	mu       sync.Mutex
	limiters map[models.Address]*rate.Limiter

	limit rate.Limit
	burst int
}

// newCallerLimiter returns nil when limit is not positive, which disables
// rate limiting.
func newCallerLimiter(limit float64, burst int) *callerLimiter {
	if limit <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &callerLimiter{
		limiters: make(map[models.Address]*rate.Limiter),
		limit:    rate.Limit(limit),
		burst:    burst,
	}
}

func (l *callerLimiter) allow(caller models.Address) bool {
	l.mu.Lock()
	lim, ok := l.limiters[caller]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[caller] = lim
	}
	l.mu.Unlock()

	return lim.Allow()
}

// withRateLimit rejects callers that exceed their request rate with
// 429 Too Many Requests. It must run after auth.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		caller, err := callerFromRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if !h.limiter.allow(caller) {
			if h.metrics != nil {
				h.metrics.RateLimited.Inc()
			}
			logger.FromRequest(r).Warn().Msg("caller exceeded request rate")
			writeError(w, r, ErrRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}
