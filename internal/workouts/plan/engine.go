// Package plan builds rule-based workout plans from a fitness profile.
package plan

// Tip and warning texts.
const (
	TipHydration = "Stay hydrated - drink water before, during, and after workouts"
	TipWarmUp    = "Warm up properly before each workout session"
	TipCoolDown  = "Cool down and stretch after your workout"
	TipListen    = "Listen to your body and rest when needed"

	TipStartSlowly = "Start slowly and gradually increase intensity"
	TipForm        = "Focus on proper form rather than speed or weight"
	TipBreaks      = "Take breaks between exercises as needed"

	TipSplitWorkout = "Try to split your workout throughout the day if possible"
	TipCompound     = "Focus on compound exercises to maximize limited time"
	TipIntensity    = "Maintain higher intensity for shorter duration"

	WarningMedical   = "Consult with your healthcare provider before starting this workout plan"
	WarningAge       = "Consider a thorough medical check-up before starting intense workouts"
	WarningLowImpact = "Start with low-impact exercises and gradually increase intensity"
)

const (
	shortSessionMinutes = 30
	checkupAge          = 50
	obeseBMI            = 30.0
)

// Generate builds the workout plan, tips and warnings for the profile.
func Generate(profile FitnessProfile) Plan {
	var days []DayPlan
	switch profile.CurrentFitnessLevel {
	case LevelBeginner:
		days = beginnerPlan()
	case LevelIntermediate:
		days = intermediatePlan()
	default:
		days = advancedPlan()
	}

	return Plan{
		WorkoutPlan: days,
		Tips:        tips(profile),
		Warnings:    warnings(profile, profile.BMI()),
	}
}

func beginnerPlan() []DayPlan {
	return []DayPlan{
		{
			Day:   "Day 1",
			Focus: "Full Body + Light Cardio",
			Exercises: []Exercise{
				lasting(byIntensity(cardioCatalog, intensityLow), "15 minutes"),
				reps(byName(strengthCatalog, "Push-ups"), "5-10 reps, 2 sets"),
				reps(byName(strengthCatalog, "Squats"), "10 reps, 2 sets"),
				lasting(byName(strengthCatalog, "Planks"), "20 seconds, 2 sets"),
			},
		},
		{
			Day:   "Day 2",
			Focus: "Rest and Light Activity",
			Exercises: []Exercise{
				{Name: "Walking", Duration: "20 minutes", Intensity: intensityLow},
				{Name: "Basic Stretching", Duration: "10 minutes", Intensity: intensityLow},
			},
		},
		{
			Day:   "Day 3",
			Focus: "Full Body + Light Cardio",
			Exercises: []Exercise{
				lasting(byIntensity(cardioCatalog, intensityLow), "15 minutes"),
				lasting(byName(strengthCatalog, "Wall Sits"), "20 seconds, 2 sets"),
				reps(byName(strengthCatalog, "Push-ups"), "5-10 reps, 2 sets"),
				{Name: "Stretching", Duration: "10 minutes", Intensity: intensityLow},
			},
		},
	}
}

func intermediatePlan() []DayPlan {
	return []DayPlan{
		{
			Day:   "Day 1",
			Focus: "Upper Body + Cardio",
			Exercises: []Exercise{
				lasting(byIntensity(cardioCatalog, intensityModerate), "20 minutes"),
				reps(byName(strengthCatalog, "Push-ups"), "12-15 reps, 3 sets"),
				reps(byName(strengthCatalog, "Dumbbell Rows"), "12 reps, 3 sets"),
				lasting(byName(strengthCatalog, "Planks"), "45 seconds, 3 sets"),
			},
		},
		{
			Day:   "Day 2",
			Focus: "Lower Body + Flexibility",
			Exercises: []Exercise{
				reps(byName(strengthCatalog, "Squats"), "15 reps, 3 sets"),
				reps(byName(strengthCatalog, "Lunges"), "12 reps each leg, 3 sets"),
				lasting(flexibilityCatalog[0], "20 minutes"),
			},
		},
		{
			Day:   "Day 3",
			Focus: "Full Body + HIIT",
			Exercises: []Exercise{
				{Name: "HIIT Circuit", Duration: "20 minutes", Intensity: intensityHigh},
				reps(byName(strengthCatalog, "Push-ups"), "12-15 reps, 3 sets"),
				reps(byName(strengthCatalog, "Squats"), "15 reps, 3 sets"),
				lasting(flexibilityCatalog[1], "10 minutes"),
			},
		},
	}
}

func advancedPlan() []DayPlan {
	return []DayPlan{
		{
			Day:   "Day 1",
			Focus: "Intense Upper Body + HIIT",
			Exercises: []Exercise{
				lasting(byIntensity(cardioCatalog, intensityHigh), "25 minutes"),
				reps(byName(strengthCatalog, "Push-ups"), "20 reps, 4 sets"),
				reps(byName(strengthCatalog, "Dumbbell Rows"), "15 reps, 4 sets"),
				lasting(byName(strengthCatalog, "Planks"), "60 seconds, 4 sets"),
			},
		},
		{
			Day:   "Day 2",
			Focus: "Intense Lower Body + Cardio",
			Exercises: []Exercise{
				lasting(byName(cardioCatalog, "Jump Rope"), "20 minutes"),
				reps(byName(strengthCatalog, "Squats"), "20 reps, 4 sets"),
				reps(byName(strengthCatalog, "Lunges"), "15 reps each leg, 4 sets"),
				lasting(flexibilityCatalog[2], "20 minutes"),
			},
		},
		{
			Day:   "Day 3",
			Focus: "Full Body + Advanced HIIT",
			Exercises: []Exercise{
				{Name: "Advanced HIIT Circuit", Duration: "30 minutes", Intensity: "very high"},
				reps(byName(strengthCatalog, "Push-ups"), "20 reps, 4 sets"),
				reps(byName(strengthCatalog, "Squats"), "20 reps, 4 sets"),
				lasting(flexibilityCatalog[1], "15 minutes"),
			},
		},
	}
}

func tips(profile FitnessProfile) []string {
	out := []string{TipHydration, TipWarmUp, TipCoolDown, TipListen}
	if profile.CurrentFitnessLevel == LevelBeginner {
		out = append(out, TipStartSlowly, TipForm, TipBreaks)
	}
	if profile.TimeAvailable < shortSessionMinutes {
		out = append(out, TipSplitWorkout, TipCompound, TipIntensity)
	}
	return out
}

func warnings(profile FitnessProfile, bmi float64) []string {
	out := []string{}
	if len(profile.MedicalConditions) > 0 {
		out = append(out, WarningMedical)
	}
	if profile.Age > checkupAge {
		out = append(out, WarningAge)
	}
	if bmi > obeseBMI {
		out = append(out, WarningLowImpact)
	}
	return out
}
