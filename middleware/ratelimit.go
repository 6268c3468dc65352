// ratelimit.go - Token bucket rate limiting for the auth endpoints

package middleware

import (
	"net/http"

	"product-catalog/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RateLimiter struct {
	limiter *rate.Limiter
}

func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{limiter: rate.NewLimiter(r, burst)}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiter.Allow() {
			response.Error(c, "Too many requests. Please try again later.", nil, http.StatusTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
