package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crewdesk/internal/infrastructure/ratelimit"
	sharedConfig "crewdesk/internal/shared/config"
	"crewdesk/internal/shared/constants"
	"crewdesk/internal/shared/logger"
	"crewdesk/internal/shared/utils"
)

// RateLimit enforces a fixed-window limit per client. Authenticated requests
// are keyed by user id so NAT-shared IPs are not penalized collectively;
// anonymous requests fall back to the client IP.
func RateLimit(limiter ratelimit.RateLimiter, cfg *sharedConfig.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	window := time.Duration(cfg.WindowSeconds) * time.Second

	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if userID, ok := c.Get(constants.ContextKeyUserID); ok {
			key = fmt.Sprintf("user:%v", userID)
		}

		allowed, err := limiter.Allow(c.Request.Context(), key, cfg.Requests, window)
		if err != nil {
			// A rate limiter outage must not take the API down with it.
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, constants.ErrMsgRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}
