package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"annadata-backend/internal/llm"
	"annadata-backend/internal/shared/cache"
	"annadata-backend/internal/shared/config"
	"annadata-backend/internal/users"
)

func memoryConfig() config.Config {
	return config.Config{
		Env:                "dev",
		LLMProvider:        llm.ProviderNone,
		AIBreakerThreshold: 3,
		AIBreakerCooldown:  5 * time.Minute,
		AICacheTTL:         time.Hour,
		AIRateLimitPerMin:  30,
	}
}

func TestBuildMemoryMode(t *testing.T) {
	app, err := Build(context.Background(), memoryConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer app.Close()

	if app.DB != nil {
		t.Fatalf("expected no database")
	}
	if _, ok := app.UsersRepo.(*users.MemoryRepo); !ok {
		t.Fatalf("users repo = %T", app.UsersRepo)
	}
	if _, ok := app.Cache.(*cache.Memory); !ok {
		t.Fatalf("cache = %T", app.Cache)
	}
	if llm.Configured(app.LLM) {
		t.Fatalf("llm should be disabled")
	}

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("health status = %d", resp.Code)
	}
}

func TestBuildRequiresDatabaseOutsideDev(t *testing.T) {
	cfg := memoryConfig()
	cfg.Env = "production"
	if _, err := Build(context.Background(), cfg); err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}
}

func TestBuildLLM(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		provider string
	}{
		{name: "none", cfg: config.Config{LLMProvider: llm.ProviderNone}, provider: llm.ProviderNone},
		{name: "openai without key", cfg: config.Config{LLMProvider: llm.ProviderOpenAI}, provider: llm.ProviderNone},
		{name: "openai", cfg: config.Config{LLMProvider: llm.ProviderOpenAI, OpenAIAPIKey: "sk-test"}, provider: llm.ProviderOpenAI},
		{name: "anthropic without key", cfg: config.Config{LLMProvider: llm.ProviderAnthropic}, provider: llm.ProviderNone},
		{name: "anthropic", cfg: config.Config{LLMProvider: llm.ProviderAnthropic, AnthropicAPIKey: "sk-ant"}, provider: llm.ProviderAnthropic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := buildLLM(tt.cfg)
			if err != nil {
				t.Fatalf("buildLLM: %v", err)
			}
			if got := client.Provider(); got != tt.provider {
				t.Fatalf("provider = %q, want %q", got, tt.provider)
			}
		})
	}
}

func TestBuildCacheFallsBackInDev(t *testing.T) {
	cfg := memoryConfig()
	cfg.RedisURL = "not-a-redis-url"
	c, err := buildCache(context.Background(), cfg)
	if err != nil {
		t.Fatalf("buildCache: %v", err)
	}
	if _, ok := c.(*cache.Memory); !ok {
		t.Fatalf("cache = %T", c)
	}

	cfg.Env = "production"
	if _, err := buildCache(context.Background(), cfg); err == nil {
		t.Fatalf("expected error in production")
	}
}
