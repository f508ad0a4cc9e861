package middleware

import (
	"net"
	"net/http"
	"portfolio/shared"
	"portfolio/shared/constant"
	"portfolio/shared/logger"
	"portfolio/transport/http/response"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"

	localLimiterMaxEntries = 10000
)

// RateLimit counts requests per client in the shared cache. When the cache is unreachable the
// count falls back to an in-process token bucket per client.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			ip := clientIP(r)
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, ip, userAgent(r))

			count, err := a.cache.Increment(r.Context(), cacheKey, windowSecs)
			if err != nil {
				logger.FromContext(r.Context()).Warn().Err(err).Msg("rate limiter cache unavailable, using local limiter")

				if !a.fallback.allow(ip) {
					response.WithRequestLimitExceeded(w)

					return
				}

				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(maxReqs)-count), 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			if count > int64(maxReqs) {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type localLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newLocalLimiter(maxRequests, windowSeconds int) *localLimiter {
	if maxRequests <= 0 {
		maxRequests = 1
	}

	if windowSeconds <= 0 {
		windowSeconds = 1
	}

	return &localLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Duration(windowSeconds) * time.Second / time.Duration(maxRequests)),
		burst:    maxRequests,
	}
}

func (l *localLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= localLimiterMaxEntries {
			l.limiters = make(map[string]*rate.Limiter)
		}

		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}

	return limiter.Allow()
}

func userAgent(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		// first hop is the original client
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
