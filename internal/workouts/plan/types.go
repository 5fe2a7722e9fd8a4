package plan

// Exercise is a single entry in a day plan. Catalog templates and plan overrides
// share this shape, so every field is optional on the wire.
type Exercise struct {
	Name         string `json:"name,omitempty"`
	Reps         string `json:"reps,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Intensity    string `json:"intensity,omitempty"`
	CaloriesBurn string `json:"caloriesBurn,omitempty"`
	Target       string `json:"target,omitempty"`
	Focus        string `json:"focus,omitempty"`
}

// DayPlan groups the exercises scheduled for one training day.
type DayPlan struct {
	Day       string     `json:"day"`
	Focus     string     `json:"focus"`
	Exercises []Exercise `json:"exercises"`
}

// Plan is the generated workout recommendation.
type Plan struct {
	WorkoutPlan []DayPlan `json:"workoutPlan"`
	Tips        []string  `json:"tips"`
	Warnings    []string  `json:"warnings"`
}

// FitnessProfile is the input to Generate. Gender, ActivityLevel,
// PreferredWorkoutType and WorkoutFrequency are carried for the response
// but do not influence the plan.
type FitnessProfile struct {
	Age                  int      `json:"age"`
	WeightKg             float64  `json:"weight"`
	HeightCm             float64  `json:"height"`
	Gender               string   `json:"gender"`
	ActivityLevel        string   `json:"activityLevel"`
	FitnessGoals         []string `json:"fitnessGoals"`
	MedicalConditions    []string `json:"medicalConditions"`
	CurrentFitnessLevel  string   `json:"currentFitnessLevel"`
	PreferredWorkoutType string   `json:"preferredWorkoutType"`
	WorkoutFrequency     int      `json:"workoutFrequency"`
	TimeAvailable        int      `json:"timeAvailable"`
}

// BMI returns weight / height² with height converted to meters. It returns 0
// when the height is unknown.
func (p FitnessProfile) BMI() float64 {
	if p.HeightCm <= 0 {
		return 0
	}
	m := p.HeightCm / 100
	return p.WeightKg / (m * m)
}

// Fitness tiers.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Intensity tags used by the catalogs.
const (
	intensityLow      = "low"
	intensityModerate = "moderate"
	intensityHigh     = "high"
)
