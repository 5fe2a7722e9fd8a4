package workouts

import (
	"context"
	"errors"

	"annadata-backend/internal/shared/metrics"
	"annadata-backend/internal/workouts/plan"
)

// ProfileSource supplies the fitness questionnaire answers for a user.
type ProfileSource interface {
	FitnessProfile(ctx context.Context, userID string) (plan.FitnessProfile, error)
}

// Recommendation is the GET /fitness/recommendations payload.
type Recommendation struct {
	Recommendations plan.Plan           `json:"recommendations"`
	UserData        plan.FitnessProfile `json:"userData"`
}

type Service struct {
	Profiles ProfileSource
}

func NewService(profiles ProfileSource) *Service {
	return &Service{Profiles: profiles}
}

func (s *Service) Recommend(ctx context.Context, userID string) (Recommendation, error) {
	if s == nil || s.Profiles == nil {
		return Recommendation{}, errors.New("workouts service not configured")
	}
	profile, err := s.Profiles.FitnessProfile(ctx, userID)
	if err != nil {
		return Recommendation{}, err
	}
	out := Recommendation{
		Recommendations: plan.Generate(profile),
		UserData:        profile,
	}
	metrics.IncWorkoutPlans()
	return out, nil
}
