package routes

import (
	"github.com/gin-gonic/gin"

	orghandlers "crewdesk/internal/interfaces/http/handlers/organization"
	"crewdesk/internal/interfaces/http/middleware"
)

type InvitationRouteConfig struct {
	OrganizationHandler *orghandlers.OrganizationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimit           gin.HandlerFunc
}

func SetupInvitationRoutes(engine *gin.Engine, config *InvitationRouteConfig) {
	invitations := engine.Group("/invitations")
	{
		// Token preview stays public: the invitee may not have an account yet.
		invitations.GET("/:token", config.RateLimit, config.OrganizationHandler.GetInvitationByToken)

		invitations.POST("/:token/accept",
			config.AuthMiddleware.RequireAuth(),
			config.RateLimit,
			config.OrganizationHandler.AcceptInvitation)
	}
}
