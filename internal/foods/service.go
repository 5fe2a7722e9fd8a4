package foods

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"annadata-backend/internal/llm"
	"annadata-backend/internal/shared/cache"
	"annadata-backend/internal/shared/metrics"
	"annadata-backend/internal/shared/resilience"
	"annadata-backend/internal/shared/telemetry"
	"annadata-backend/internal/shared/util"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	featureAnalyze  = "food_analysis"
	featureDescribe = "food_description"

	analysisMaxTokens    = 1500
	descriptionMaxTokens = 400
)

type Service struct {
	LLM      llm.Client
	Breaker  *resilience.Breaker
	Cache    cache.Cache
	CacheTTL time.Duration

	// Policy overrides the retry policy; tests use it to skip backoff.
	Policy func(name string, breaker *resilience.Breaker) resilience.Policy

	group singleflight.Group
}

func NewService(client llm.Client, breaker *resilience.Breaker, c cache.Cache, ttl time.Duration) *Service {
	if client == nil {
		client = llm.Disabled{}
	}
	if c == nil {
		c = cache.NewMemory()
	}
	return &Service{
		LLM:      client,
		Breaker:  breaker,
		Cache:    c,
		CacheTTL: ttl,
		Policy:   resilience.DefaultPolicy,
	}
}

// Analyze asks the model for a nutrition breakdown of query. Any failure is
// answered with the sample food; the error return is reserved for bad input.
func (s *Service) Analyze(ctx context.Context, query string) (AnalyzeResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return AnalyzeResult{}, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	if !llm.Configured(s.LLM) {
		metrics.IncAIFallback(featureAnalyze, "not_configured")
		return AnalyzeResult{Food: SampleFood(), Source: SourceSample, Notice: noticeNotConfigured}, nil
	}

	key := "food:analysis:" + util.HashKey(query)
	var cached Food
	if s.cacheGet(ctx, key, &cached) {
		return AnalyzeResult{Food: cached, Source: SourceAI}, nil
	}

	food, outcome := resilience.WithFallback(ctx, s.policy(featureAnalyze), func(ctx context.Context) (Food, error) {
		raw, err := s.complete(ctx, llm.Request{
			System:    analysisSystemPrompt,
			Prompt:    analysisPrompt(query),
			JSON:      true,
			MaxTokens: analysisMaxTokens,
		})
		if err != nil {
			return Food{}, err
		}
		return parseAnalysis(raw, query)
	}, SampleFood)

	if outcome.Fallback() {
		s.logFallback(featureAnalyze, outcome)
		notice := noticeFailed
		if errors.Is(outcome.Err, resilience.ErrBreakerOpen) {
			notice = noticeUnavailable
		}
		return AnalyzeResult{Food: food, Source: SourceSample, Notice: notice}, nil
	}
	s.cacheSet(ctx, key, food)
	return AnalyzeResult{Food: food, Source: SourceAI}, nil
}

// GenerateImage produces a photographic description of the food and an
// image URL. Identical concurrent requests share one provider call.
func (s *Service) GenerateImage(ctx context.Context, foodName, description string) (GeneratedImage, error) {
	foodName = strings.TrimSpace(foodName)
	description = strings.TrimSpace(description)
	if foodName == "" {
		return GeneratedImage{}, fmt.Errorf("%w: foodName is required", ErrInvalidInput)
	}

	key := "food:image:" + util.HashKey(foodName, description)
	var cached GeneratedImage
	if s.cacheGet(ctx, key, &cached) {
		cached.Cached = true
		return cached, nil
	}

	v, _, _ := s.group.Do(key, func() (any, error) {
		out := GeneratedImage{
			Success:     true,
			ImageURL:    ImageURL(foodName),
			Description: description,
			Source:      SourceSample,
		}
		if !llm.Configured(s.LLM) {
			metrics.IncAIFallback(featureDescribe, "not_configured")
			return out, nil
		}
		// The shared call must outlive the request that happened to start it.
		callCtx := context.WithoutCancel(ctx)
		text, outcome := resilience.WithFallback(callCtx, s.policy(featureDescribe), func(ctx context.Context) (string, error) {
			return s.complete(ctx, llm.Request{Prompt: descriptionPrompt(foodName, description), MaxTokens: descriptionMaxTokens})
		}, func() string { return description })
		out.Description = text
		if outcome.Fallback() {
			s.logFallback(featureDescribe, outcome)
			return out, nil
		}
		out.Source = SourceAI
		s.cacheSet(callCtx, key, out)
		return out, nil
	})
	return v.(GeneratedImage), nil
}

func (s *Service) complete(ctx context.Context, req llm.Request) (string, error) {
	start := time.Now()
	out, err := s.LLM.Complete(ctx, req)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.ObserveAIRequest(s.LLM.Provider(), outcome, time.Since(start))
	return out, err
}

func (s *Service) policy(name string) resilience.Policy {
	if s.Policy == nil {
		return resilience.DefaultPolicy(name, s.Breaker)
	}
	return s.Policy(name, s.Breaker)
}

func (s *Service) logFallback(feature string, outcome resilience.Outcome) {
	metrics.IncAIFallback(feature, outcome.Reason())
	fields := map[string]any{
		"feature":  feature,
		"reason":   outcome.Reason(),
		"attempts": outcome.Attempts,
		"provider": s.LLM.Provider(),
	}
	if outcome.Err != nil {
		fields["err"] = outcome.Err
	}
	telemetry.Warn("ai.fallback", fields)
}

func (s *Service) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.Cache == nil {
		return false
	}
	raw, ok, err := s.Cache.Get(ctx, key)
	if err != nil {
		telemetry.Warn("cache.get_failed", map[string]any{"key": key, "err": err})
		return false
	}
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, raw, s.CacheTTL); err != nil {
		telemetry.Warn("cache.set_failed", map[string]any{"key": key, "err": err})
	}
}
