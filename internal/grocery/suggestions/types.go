package suggestions

import (
	"math"
	"math/rand/v2"
)

// Suggestion is a grocery item recommended to the user.
type Suggestion struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ListItem is an entry already present on the user's grocery list.
type ListItem struct {
	Name string `json:"name"`
}

// Macro is a daily macronutrient share ("Protein", "Carbs" or "Fat").
type Macro struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Reading is a single tracked value such as workout minutes or body weight.
type Reading struct {
	Value float64 `json:"value"`
	Date  string  `json:"date,omitempty"`
}

// HealthData holds tracked history; only the latest workout reading is consulted.
type HealthData struct {
	Macros         []Macro   `json:"macros,omitempty"`
	WorkoutMinutes []Reading `json:"workoutMinutes,omitempty"`
	Weight         []Reading `json:"weight,omitempty"`
}

// HealthProfile is the input to Generator.Generate.
type HealthProfile struct {
	WeightKg            float64    `json:"weight"`
	HeightCm            float64    `json:"height"`
	BMI                 float64    `json:"bmi,omitempty"`
	ActivityLevel       string     `json:"activityLevel"`
	DietaryRestrictions []string   `json:"dietaryRestrictions"`
	HealthGoals         []string   `json:"healthGoals"`
	HealthData          HealthData `json:"healthData"`
}

// ComputeBMI sets BMI from weight and height, rounded to one decimal. BMI is
// left at zero when either value is missing.
func (p *HealthProfile) ComputeBMI() {
	if p.WeightKg <= 0 || p.HeightCm <= 0 {
		p.BMI = 0
		return
	}
	m := p.HeightCm / 100
	p.BMI = math.Round(p.WeightKg/(m*m)*10) / 10
}

// Rand is the randomness the generators consume. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// globalRand delegates to the goroutine-safe top-level math/rand/v2 source.
type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }
