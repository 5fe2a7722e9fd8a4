package profiles

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"annadata-backend/internal/grocery/suggestions"
	"annadata-backend/internal/workouts/plan"
)

const (
	defaultWeightKg      = 70
	defaultHeightCm      = 170
	defaultActivityLevel = "moderate"
	defaultHealthGoal    = "general health"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// DefaultFitnessProfile is the demo profile used when a caller has not
// filled in the questionnaire.
func DefaultFitnessProfile() plan.FitnessProfile {
	return plan.FitnessProfile{
		Age:                  30,
		WeightKg:             defaultWeightKg,
		HeightCm:             defaultHeightCm,
		Gender:               "not specified",
		ActivityLevel:        defaultActivityLevel,
		FitnessGoals:         []string{"general fitness"},
		MedicalConditions:    []string{},
		CurrentFitnessLevel:  plan.LevelIntermediate,
		PreferredWorkoutType: "mixed",
		WorkoutFrequency:     3,
		TimeAvailable:        45,
	}
}

func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Profile{}, ErrNotFound
	}
	return s.Repo.Get(ctx, userID)
}

// Save validates p and stores it for userID.
func (s *Service) Save(ctx context.Context, userID string, p Profile) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Profile{}, errors.New("user id is required")
	}
	p = normalize(p)
	if err := Validate(p); err != nil {
		return Profile{}, err
	}
	p.UserID = userID
	saved, err := s.Repo.Upsert(ctx, p)
	if err != nil {
		return Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return saved, nil
}

// FitnessProfile overlays the stored answers on the demo profile. Callers
// without a stored profile get the demo profile.
func (s *Service) FitnessProfile(ctx context.Context, userID string) (plan.FitnessProfile, error) {
	out := DefaultFitnessProfile()
	if strings.TrimSpace(userID) == "" || strings.HasPrefix(userID, "guest:") {
		return out, nil
	}
	p, err := s.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return out, nil
	}
	if err != nil {
		return plan.FitnessProfile{}, err
	}

	f := p.Fitness
	if f.Age > 0 {
		out.Age = f.Age
	}
	if w := p.LatestWeight(); w > 0 {
		out.WeightKg = w
	}
	if p.Settings.HeightCm > 0 {
		out.HeightCm = p.Settings.HeightCm
	}
	if f.Gender != "" {
		out.Gender = f.Gender
	}
	if p.Settings.ActivityLevel != "" {
		out.ActivityLevel = p.Settings.ActivityLevel
	}
	if len(f.FitnessGoals) > 0 {
		out.FitnessGoals = slices.Clone(f.FitnessGoals)
	}
	if len(f.MedicalConditions) > 0 {
		out.MedicalConditions = slices.Clone(f.MedicalConditions)
	}
	if f.CurrentFitnessLevel != "" {
		out.CurrentFitnessLevel = f.CurrentFitnessLevel
	}
	if f.PreferredWorkoutType != "" {
		out.PreferredWorkoutType = f.PreferredWorkoutType
	}
	if f.WorkoutFrequency > 0 {
		out.WorkoutFrequency = f.WorkoutFrequency
	}
	if f.TimeAvailable > 0 {
		out.TimeAvailable = f.TimeAvailable
	}
	return out, nil
}

// HealthProfile builds the grocery generator input from the stored profile.
// It returns ErrNotFound when the user has no profile.
func (s *Service) HealthProfile(ctx context.Context, userID string) (suggestions.HealthProfile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return suggestions.HealthProfile{}, err
	}
	out := suggestions.HealthProfile{
		WeightKg:            p.LatestWeight(),
		HeightCm:            p.Settings.HeightCm,
		ActivityLevel:       p.Settings.ActivityLevel,
		DietaryRestrictions: slices.Clone(p.Settings.DietaryRestrictions),
		HealthData:          p.HealthData,
	}
	if out.WeightKg <= 0 {
		out.WeightKg = defaultWeightKg
	}
	if out.HeightCm <= 0 {
		out.HeightCm = defaultHeightCm
	}
	if out.ActivityLevel == "" {
		out.ActivityLevel = defaultActivityLevel
	}
	if out.DietaryRestrictions == nil {
		out.DietaryRestrictions = []string{}
	}
	for _, g := range p.Goals {
		if name := strings.TrimSpace(g.Name); name != "" {
			out.HealthGoals = append(out.HealthGoals, name)
		}
	}
	if len(out.HealthGoals) == 0 {
		out.HealthGoals = []string{defaultHealthGoal}
	}
	out.ComputeBMI()
	return out, nil
}

func normalize(p Profile) Profile {
	p.Settings.ActivityLevel = strings.ToLower(strings.TrimSpace(p.Settings.ActivityLevel))
	p.Fitness.CurrentFitnessLevel = strings.ToLower(strings.TrimSpace(p.Fitness.CurrentFitnessLevel))
	p.Settings.DietaryRestrictions = lowerAll(p.Settings.DietaryRestrictions)
	p.Goals = slices.Clone(p.Goals)
	for i := range p.Goals {
		p.Goals[i].Name = strings.ToLower(strings.TrimSpace(p.Goals[i].Name))
	}
	return p
}

func lowerAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

var fitnessLevels = []string{"", plan.LevelBeginner, plan.LevelIntermediate, plan.LevelAdvanced}

// Validate reports every out-of-range field as a *ValidationError.
func Validate(p Profile) error {
	var fields []FieldError
	add := func(field, msg string) {
		fields = append(fields, FieldError{Field: field, Message: msg})
	}
	if p.Fitness.Age < 0 || p.Fitness.Age > 120 {
		add("fitness.age", "must be between 0 and 120")
	}
	if p.Settings.HeightCm < 0 {
		add("settings.height", "must be positive")
	}
	if !slices.Contains(fitnessLevels, p.Fitness.CurrentFitnessLevel) {
		add("fitness.currentFitnessLevel", "must be beginner, intermediate or advanced")
	}
	if p.Fitness.WorkoutFrequency < 0 || p.Fitness.WorkoutFrequency > 7 {
		add("fitness.workoutFrequency", "must be between 0 and 7")
	}
	if p.Fitness.TimeAvailable < 0 {
		add("fitness.timeAvailable", "must not be negative")
	}
	for i, r := range p.HealthData.Weight {
		if r.Value <= 0 {
			add(fmt.Sprintf("healthData.weight[%d]", i), "must be positive")
		}
	}
	for i, r := range p.HealthData.WorkoutMinutes {
		if r.Value < 0 {
			add(fmt.Sprintf("healthData.workoutMinutes[%d]", i), "must not be negative")
		}
	}
	for i, m := range p.HealthData.Macros {
		if m.Value < 0 || m.Value > 100 {
			add(fmt.Sprintf("healthData.macros[%d]", i), "must be a percentage")
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
