package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// Endpoint classes get independent per-IP limits, mirroring the deployment
// this service fronts: a broad global window plus tighter windows for
// token-issuing endpoints, provider calls, and database writes.
type RateLimiters struct {
	Global *limiter.Limiter
	Auth   *limiter.Limiter
	Plaid  *limiter.Limiter
	DB     *limiter.Limiter

	// Skip disables enforcement (test mode).
	Skip bool
}

// NewRateLimiters builds the four limiter classes backed by in-memory stores.
func NewRateLimiters(skip bool) *RateLimiters {
	newLimiter := func(period time.Duration, count int64) *limiter.Limiter {
		return limiter.New(memory.NewStore(), limiter.Rate{Period: period, Limit: count})
	}
	return &RateLimiters{
		Global: newLimiter(15*time.Minute, 100),
		Auth:   newLimiter(15*time.Minute, 5),
		Plaid:  newLimiter(time.Minute, 10),
		DB:     newLimiter(time.Minute, 5),
		Skip:   skip,
	}
}

// RateLimit creates a Gin middleware enforcing the given limiter per client
// IP. class names the endpoint class in the rejection message and metrics.
func RateLimit(limiterInstance *limiter.Limiter, class string, skip bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if skip {
			c.Next()
			return
		}

		rateLimiterRequests.WithLabelValues(class).Inc()

		ip := c.ClientIP()
		lctx, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to get rate limit context",
				slog.String("ip", ip), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during rate limit check"})
			return
		}

		if lctx.Reached {
			rateLimiterBlocked.WithLabelValues(class).Inc()
			GetLoggerFromCtx(c.Request.Context()).Warn("Rate limit exceeded",
				slog.String("ip", ip),
				slog.String("class", class),
				slog.Int64("limit", lctx.Limit))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, rateLimitMessage(class, limiterInstance.Rate))
			return
		}

		c.Next()
	}
}

// rateLimitMessage mirrors the original API's 429 body shape.
func rateLimitMessage(class string, rate limiter.Rate) gin.H {
	windowMinutes := int(math.Ceil(rate.Period.Minutes()))
	plural := ""
	if windowMinutes > 1 {
		plural = "s"
	}
	return gin.H{
		"error":      fmt.Sprintf("Too many %s requests", class),
		"message":    fmt.Sprintf("You have exceeded the %d requests per %d minute%s limit.", rate.Limit, windowMinutes, plural),
		"retryAfter": int(rate.Period.Seconds()),
	}
}
