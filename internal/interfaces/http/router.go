package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"crewdesk/internal/infrastructure/auth"
	"crewdesk/internal/infrastructure/config"
	"crewdesk/internal/infrastructure/queue"
	"crewdesk/internal/infrastructure/ratelimit"
	"crewdesk/internal/interfaces/http/middleware"
	"crewdesk/internal/interfaces/http/routes"
	"crewdesk/internal/shared/constants"
	"crewdesk/internal/shared/logger"
	"crewdesk/internal/shared/utils"
)

type Router struct {
	engine *gin.Engine
}

// NewRouter assembles the full HTTP surface: global middleware, route groups,
// and the dependency graph behind them.
func NewRouter(database *gorm.DB, redisClient *redis.Client, queueClient *queue.Client, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	deps := newContainer(database, queueClient, cfg, log)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)

	limiter := ratelimit.NewRedisRateLimiter(redisClient)
	rateLimit := middleware.RateLimit(limiter, &cfg.RateLimit, log)

	engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
	})

	routes.SetupOrganizationRoutes(engine, &routes.OrganizationRouteConfig{
		OrganizationHandler: deps.organizationHandler,
		AuthMiddleware:      authMiddleware,
		RateLimit:           rateLimit,
	})

	routes.SetupInvitationRoutes(engine, &routes.InvitationRouteConfig{
		OrganizationHandler: deps.organizationHandler,
		AuthMiddleware:      authMiddleware,
		RateLimit:           rateLimit,
	})

	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  deps.ticketHandler,
		AuthMiddleware: authMiddleware,
		RateLimit:      rateLimit,
	})

	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    deps.userHandler,
		AuthMiddleware: authMiddleware,
		RateLimit:      rateLimit,
	})

	return &Router{engine: engine}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
