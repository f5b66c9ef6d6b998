package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"crewdesk/internal/shared/constants"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/utils"
)

// OrganizationScope parses the optional X-Organization-ID header into the gin
// context. Handlers that receive an explicit organization id must reject a
// disagreeing header scope.
func OrganizationScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(constants.HeaderOrganizationID)
		if raw == "" {
			c.Next()
			return
		}

		orgID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || orgID == 0 {
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid X-Organization-ID header"))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyActiveOrg, uint(orgID))
		c.Next()
	}
}

// ActiveOrganizationFrom returns the header-supplied organization scope, or
// nil when the header was absent.
func ActiveOrganizationFrom(c *gin.Context) *uint {
	v, ok := c.Get(constants.ContextKeyActiveOrg)
	if !ok {
		return nil
	}
	orgID, ok := v.(uint)
	if !ok {
		return nil
	}
	return &orgID
}

// RequireScopeAgreement rejects requests whose header scope contradicts the
// explicit organization id. Returns false after writing the response.
func RequireScopeAgreement(c *gin.Context, explicitOrgID uint) bool {
	scope := ActiveOrganizationFrom(c)
	if scope != nil && *scope != explicitOrgID {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("organization id does not match X-Organization-ID header"))
		return false
	}
	return true
}
