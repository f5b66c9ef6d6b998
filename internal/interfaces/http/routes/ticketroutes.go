package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "crewdesk/internal/interfaces/http/handlers/ticket"
	"crewdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      gin.HandlerFunc
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	tickets.Use(middleware.OrganizationScope())
	{
		// Register specific paths before parameterized paths to avoid route conflicts
		tickets.POST("", config.RateLimit, config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		tickets.PUT("/comments/:commentId", config.RateLimit, config.TicketHandler.EditComment)
		tickets.DELETE("/comments/:commentId", config.RateLimit, config.TicketHandler.DeleteComment)

		tickets.POST("/:id/comments", config.RateLimit, config.TicketHandler.AddComment)
		tickets.PUT("/:id/status", config.RateLimit, config.TicketHandler.UpdateStatus)
		tickets.PUT("/:id/assignee", config.RateLimit, config.TicketHandler.AssignTicket)
		tickets.PUT("/:id/priority", config.RateLimit, config.TicketHandler.ChangePriority)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.DELETE("/:id", config.RateLimit, config.TicketHandler.DeleteTicket)
	}
}
