package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"crewdesk/internal/infrastructure/auth"
	sharedauth "crewdesk/internal/shared/auth"
	"crewdesk/internal/shared/constants"
	"crewdesk/internal/shared/logger"
	"crewdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the Bearer token and stores the resolved Principal in
// the gin context for downstream handlers.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		principal := sharedauth.Principal{
			UserID:     claims.UserID,
			Email:      claims.Email,
			Name:       claims.Name,
			SystemRole: claims.SystemRole,
		}

		c.Set(constants.ContextKeyPrincipal, principal)
		c.Set(constants.ContextKeyUserID, claims.UserID)

		c.Next()
	}
}

// PrincipalFrom extracts the authenticated principal placed by RequireAuth.
func PrincipalFrom(c *gin.Context) (sharedauth.Principal, bool) {
	v, ok := c.Get(constants.ContextKeyPrincipal)
	if !ok {
		return sharedauth.Principal{}, false
	}
	principal, ok := v.(sharedauth.Principal)
	return principal, ok
}
