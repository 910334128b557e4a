package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// GenerateRateLimit throttles AI generation per caller. Keyed by the
// authenticated user when present, falling back to client IP.
func GenerateRateLimit() gin.HandlerFunc {
	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			if userID := c.GetString("userID"); userID != "" {
				return userID
			}
			return c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			// 5 generations per minute, burst of 2
			return rate.NewLimiter(rate.Every(12*time.Second), 2), time.Hour
		},
		func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many generation requests, slow down",
			})
		},
	)
}
