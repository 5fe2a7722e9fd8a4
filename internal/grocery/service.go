package grocery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"annadata-backend/internal/grocery/suggestions"
	"annadata-backend/internal/shared/metrics"
)

// ProfileSource supplies the stored health profile for a user.
type ProfileSource interface {
	HealthProfile(ctx context.Context, userID string) (suggestions.HealthProfile, error)
}

// HealthResult is the GET /grocery/health-suggestions payload.
type HealthResult struct {
	Success     bool                      `json:"success"`
	Suggestions []suggestions.Suggestion  `json:"suggestions"`
	UserData    suggestions.HealthProfile `json:"userData"`
}

type Service struct {
	Profiles  ProfileSource
	Generator *suggestions.Generator
	Catalog   *suggestions.CatalogSuggester
}

// NewService wires both generators to rnd; nil selects the shared source.
func NewService(profiles ProfileSource, rnd suggestions.Rand) *Service {
	return &Service{
		Profiles:  profiles,
		Generator: suggestions.NewGenerator(rnd),
		Catalog:   suggestions.NewCatalogSuggester(rnd),
	}
}

func (s *Service) HealthSuggestions(ctx context.Context, userID string, existing []suggestions.ListItem) (HealthResult, error) {
	if s == nil || s.Profiles == nil || s.Generator == nil {
		return HealthResult{}, errors.New("grocery service not configured")
	}
	profile, err := s.Profiles.HealthProfile(ctx, userID)
	if err != nil {
		return HealthResult{}, err
	}
	out := HealthResult{
		Success:     true,
		Suggestions: s.Generator.Generate(profile, existing),
		UserData:    profile,
	}
	metrics.IncGrocerySuggestions("health")
	return out, nil
}

// Suggest returns catalog suggestions. It needs a diet description or a
// non-empty existing list.
func (s *Service) Suggest(diet string, existing []suggestions.ListItem) ([]string, error) {
	if s == nil || s.Catalog == nil {
		return nil, errors.New("grocery service not configured")
	}
	if strings.TrimSpace(diet) == "" && len(existing) == 0 {
		return nil, fmt.Errorf("%w: currentDiet or existingList is required", ErrInvalidInput)
	}
	out := s.Catalog.Suggest(diet, existing)
	metrics.IncGrocerySuggestions("catalog")
	return out, nil
}

// ParseExisting turns the comma separated ?existing= value into list items.
func ParseExisting(raw string) []suggestions.ListItem {
	var items []suggestions.ListItem
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			items = append(items, suggestions.ListItem{Name: name})
		}
	}
	return items
}
