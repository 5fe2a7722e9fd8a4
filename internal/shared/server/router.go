package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "annadata-backend/internal/auth"
	"annadata-backend/internal/foods"
	"annadata-backend/internal/grocery"
	"annadata-backend/internal/profiles"
	"annadata-backend/internal/services/health"
	"annadata-backend/internal/shared/config"
	"annadata-backend/internal/shared/metrics"
	"annadata-backend/internal/shared/server/middleware"
	"annadata-backend/internal/shared/server/respond"
	"annadata-backend/internal/users"
	"annadata-backend/internal/workouts"
)

const aiRateGroup = "AI"

// RouterDeps carries the handlers mounted under /api/v1. Nil handlers are skipped.
type RouterDeps struct {
	Config         config.Config
	Health         *health.Service
	UserHandler    *users.Handler
	ProfileHandler *profiles.Handler
	WorkoutHandler *workouts.Handler
	GroceryHandler *grocery.Handler
	FoodHandler    *foods.Handler
	GoogleAuth     *googleauth.GoogleService
	RateLimiter    *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.OK(c, gin.H{"ok": true})
			return
		}
		status := deps.Health.Check(c.Request.Context())
		code := http.StatusOK
		if !status.OK {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.ProfileHandler != nil {
		deps.ProfileHandler.RegisterRoutes(api)
	}
	if deps.WorkoutHandler != nil {
		deps.WorkoutHandler.RegisterRoutes(api)
	}
	if deps.GroceryHandler != nil {
		deps.GroceryHandler.RegisterRoutes(api)
	}
	if deps.FoodHandler != nil {
		deps.FoodHandler.RegisterRoutes(api)

		ai := api.Group("")
		ai.Use(middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: aiRateGroup,
			Limiter:      deps.RateLimiter,
			Rules: map[string]middleware.RateLimitRule{
				aiRateGroup: middleware.PerMinute(deps.Config.AIRateLimitPerMin),
			},
		}))
		deps.FoodHandler.RegisterAIRoutes(ai)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
