package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"crewdesk/internal/shared/constants"
)

// RequestID attaches a request id to every request, honoring one supplied by
// the caller so ids stay stable across proxies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}
