// Package bootstrap assembles repositories, services and handlers from config.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "annadata-backend/internal/auth"
	"annadata-backend/internal/foods"
	"annadata-backend/internal/grocery"
	"annadata-backend/internal/llm"
	anthropicllm "annadata-backend/internal/llm/anthropic"
	openaillm "annadata-backend/internal/llm/openai"
	"annadata-backend/internal/profiles"
	"annadata-backend/internal/services/health"
	"annadata-backend/internal/shared/cache"
	"annadata-backend/internal/shared/config"
	"annadata-backend/internal/shared/resilience"
	"annadata-backend/internal/shared/server"
	"annadata-backend/internal/shared/server/middleware"
	"annadata-backend/internal/shared/storage/db"
	"annadata-backend/internal/shared/telemetry"
	"annadata-backend/internal/users"
	"annadata-backend/internal/workouts"
)

// App holds shared dependencies and the routed engine.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Cache           cache.Cache
	LLM             llm.Client
	Breaker         *resilience.Breaker
	UsersRepo       users.Repo
	ProfilesRepo    profiles.Repo
	UsersService    *users.Service
	ProfilesService *profiles.Service
	WorkoutsService *workouts.Service
	GroceryService  *grocery.Service
	FoodsService    *foods.Service
	GoogleAuth      *googleauth.GoogleService
}

// Build prepares every dependency and routes them.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	resultCache, err := buildCache(ctx, cfg)
	if err != nil {
		return nil, err
	}
	client, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Cache:   resultCache,
		LLM:     client,
		Breaker: resilience.NewBreaker(cfg.AIBreakerThreshold, cfg.AIBreakerCooldown, nil),
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		Health:         health.NewService(sqlDB),
		UserHandler:    users.NewHandler(app.UsersService),
		ProfileHandler: profiles.NewHandler(app.ProfilesService, app.UsersService),
		WorkoutHandler: workouts.NewHandler(app.WorkoutsService, app.UsersService),
		GroceryHandler: grocery.NewHandler(app.GroceryService, app.UsersService),
		FoodHandler:    foods.NewHandler(app.FoodsService),
		GoogleAuth:     app.GoogleAuth,
		RateLimiter:    middleware.NewRateLimiter(nil),
	})
	return app, nil
}

// Close releases the database pool and cache connection.
func (a *App) Close() error {
	var firstErr error
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			firstErr = err
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repositories", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repositories", map[string]any{"reason": "database connect failed", "err": err})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return cache.NewMemory(), nil
	}
	redisCache, err := cache.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_cache", map[string]any{"err": err})
			return cache.NewMemory(), nil
		}
		return nil, err
	}
	return redisCache, nil
}

// buildLLM selects the provider. A missing key disables AI features instead of
// failing startup; callers then serve sample data.
func buildLLM(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case llm.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			telemetry.Warn("bootstrap.llm_disabled", map[string]any{"provider": cfg.LLMProvider, "reason": "OPENAI_API_KEY empty"})
			return llm.Disabled{}, nil
		}
		return openaillm.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	case llm.ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			telemetry.Warn("bootstrap.llm_disabled", map[string]any{"provider": cfg.LLMProvider, "reason": "ANTHROPIC_API_KEY empty"})
			return llm.Disabled{}, nil
		}
		return anthropicllm.NewClient(cfg.AnthropicAPIKey, cfg.LLMModel)
	default:
		return llm.Disabled{}, nil
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.ProfilesRepo = &profiles.PGRepo{DB: app.DB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.ProfilesRepo = profiles.NewMemoryRepo()
	}

	app.UsersService = users.NewService(app.UsersRepo)
	app.ProfilesService = profiles.NewService(app.ProfilesRepo)
	app.WorkoutsService = workouts.NewService(app.ProfilesService)
	app.GroceryService = grocery.NewService(app.ProfilesService, nil)
	app.FoodsService = foods.NewService(app.LLM, app.Breaker, app.Cache, app.Config.AICacheTTL)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
