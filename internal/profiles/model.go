package profiles

import (
	"time"

	"annadata-backend/internal/grocery/suggestions"
)

type Settings struct {
	HeightCm            float64  `json:"height,omitempty"`
	ActivityLevel       string   `json:"activityLevel,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
}

// Fitness holds the answers of the fitness questionnaire. Zero values mean
// "not answered".
type Fitness struct {
	Age                  int      `json:"age,omitempty"`
	Gender               string   `json:"gender,omitempty"`
	FitnessGoals         []string `json:"fitnessGoals,omitempty"`
	MedicalConditions    []string `json:"medicalConditions,omitempty"`
	CurrentFitnessLevel  string   `json:"currentFitnessLevel,omitempty"`
	PreferredWorkoutType string   `json:"preferredWorkoutType,omitempty"`
	WorkoutFrequency     int      `json:"workoutFrequency,omitempty"`
	TimeAvailable        int      `json:"timeAvailable,omitempty"`
}

type Goal struct {
	Name   string `json:"name"`
	Target string `json:"target,omitempty"`
}

// Profile is the per-user document the recommendation endpoints read.
type Profile struct {
	UserID     string                 `json:"userId"`
	Settings   Settings               `json:"settings"`
	Goals      []Goal                 `json:"goals"`
	HealthData suggestions.HealthData `json:"healthData"`
	Fitness    Fitness                `json:"fitness"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
}

// LatestWeight returns the most recent weight reading, or 0.
func (p Profile) LatestWeight() float64 {
	if n := len(p.HealthData.Weight); n > 0 {
		return p.HealthData.Weight[n-1].Value
	}
	return 0
}
