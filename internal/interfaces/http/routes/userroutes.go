package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "crewdesk/internal/interfaces/http/handlers/user"
	"crewdesk/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      gin.HandlerFunc
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.POST("", config.RateLimit, config.UserHandler.RegisterUser)
		users.GET("/me", config.UserHandler.GetCurrentUser)
	}
}
