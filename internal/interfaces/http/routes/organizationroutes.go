package routes

import (
	"github.com/gin-gonic/gin"

	orghandlers "crewdesk/internal/interfaces/http/handlers/organization"
	"crewdesk/internal/interfaces/http/middleware"
)

type OrganizationRouteConfig struct {
	OrganizationHandler *orghandlers.OrganizationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimit           gin.HandlerFunc
}

func SetupOrganizationRoutes(engine *gin.Engine, config *OrganizationRouteConfig) {
	orgs := engine.Group("/organizations")
	orgs.Use(config.AuthMiddleware.RequireAuth())
	orgs.Use(middleware.OrganizationScope())
	{
		orgs.POST("", config.RateLimit, config.OrganizationHandler.CreateOrganization)
		orgs.GET("", config.OrganizationHandler.ListOrganizations)

		orgs.GET("/:id/members", config.OrganizationHandler.ListMembers)
		orgs.PUT("/:id/members/:userId", config.RateLimit, config.OrganizationHandler.UpdateMemberRole)
		orgs.DELETE("/:id/members/:userId", config.RateLimit, config.OrganizationHandler.RemoveMember)

		orgs.POST("/:id/invitations", config.RateLimit, config.OrganizationHandler.InviteMember)
		orgs.GET("/:id/invitations", config.OrganizationHandler.ListPendingInvitations)
		orgs.DELETE("/:id/invitations/:invitationId", config.RateLimit, config.OrganizationHandler.RevokeInvitation)

		orgs.GET("/:id", config.OrganizationHandler.GetOrganization)
		orgs.PUT("/:id", config.RateLimit, config.OrganizationHandler.UpdateOrganization)
		orgs.DELETE("/:id", config.RateLimit, config.OrganizationHandler.DeleteOrganization)
	}
}
