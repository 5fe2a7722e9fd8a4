// Package suggestions builds rule-based grocery suggestions from a health profile.
package suggestions

import (
	"strings"
)

// Output bounds for a single response.
const (
	MinSuggestions = 5
	MaxSuggestions = 7
)

const (
	overweightBMI    = 25.0
	underweightBMI   = 18.5
	lowProteinShare  = 25.0
	lowCarbShare     = 45.0
	lowFatShare      = 20.0
	activeMinutes    = 30.0
	activityHigh     = "high"
	restrictionVeg   = "vegetarian"
	restrictionVegan = "vegan"
	goalMuscleGain   = "muscle gain"
	goalWeightLoss   = "weight loss"
)

// Generator produces randomized grocery suggestions. It is safe for concurrent
// use when its Rand is.
type Generator struct {
	rnd Rand
}

// NewGenerator returns a Generator drawing from rnd, or from the shared
// math/rand/v2 source when rnd is nil.
func NewGenerator(rnd Rand) *Generator {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Generator{rnd: rnd}
}

// Generate returns between MinSuggestions and MaxSuggestions unique items for
// the profile, none of which already appear on the existing list. When the list
// already holds nearly every known item, fewer (possibly zero) are returned.
func (g *Generator) Generate(profile HealthProfile, existing []ListItem) []Suggestion {
	return pick(g.rnd, Candidates(profile, existing))
}

// Candidates returns the deduplicated pool the final selection draws from.
// The pool is deterministic for a given profile and list.
func Candidates(profile HealthProfile, existing []ListItem) []Suggestion {
	var pool []Suggestion

	if profile.BMI > 0 {
		switch {
		case profile.BMI > overweightBMI:
			pool = append(pool, weightManagementFoods...)
		case profile.BMI < underweightBMI:
			pool = append(pool, calorieDenseFoods...)
		default:
			pool = append(pool, balancedFoods...)
		}
	}

	if macros := profile.HealthData.Macros; len(macros) > 0 {
		if macroValue(macros, "Protein") < lowProteinShare {
			pool = append(pool, proteinFoods...)
		}
		if macroValue(macros, "Carbs") < lowCarbShare {
			pool = append(pool, complexCarbFoods...)
		}
		if macroValue(macros, "Fat") < lowFatShare {
			pool = append(pool, healthyFatFoods...)
		}
	}

	if profile.ActivityLevel == activityHigh || latestWorkoutMinutes(profile.HealthData) > activeMinutes {
		pool = append(pool, recoveryFoods...)
	}

	if contains(profile.DietaryRestrictions, restrictionVeg) {
		pool = without(pool, VegetarianExclusions)
		pool = append(pool, vegetarianFoods...)
	}
	if contains(profile.DietaryRestrictions, restrictionVegan) {
		pool = without(pool, VeganExclusions)
		pool = append(pool, veganFoods...)
	}

	if contains(profile.HealthGoals, goalMuscleGain) {
		pool = append(pool, muscleGainFoods...)
	}
	if contains(profile.HealthGoals, goalWeightLoss) {
		pool = append(pool, weightLossFoods...)
	}

	exclude := existingNames(existing)
	pool = filterExisting(dedupe(pool), exclude)

	for _, reserve := range [][]Suggestion{generalFoods, reserveFoods()} {
		if len(pool) >= MinSuggestions {
			break
		}
		pool = filterExisting(dedupe(append(pool, reserve...)), exclude)
	}
	return pool
}

func pick(rnd Rand, pool []Suggestion) []Suggestion {
	out := make([]Suggestion, len(pool))
	copy(out, pool)
	rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	n := MinSuggestions + rnd.IntN(MaxSuggestions-MinSuggestions+1)
	if n > len(out) {
		n = len(out)
	}
	return out[:n]
}

func macroValue(macros []Macro, name string) float64 {
	for _, m := range macros {
		if m.Name == name {
			return m.Value
		}
	}
	return 0
}

func latestWorkoutMinutes(data HealthData) float64 {
	if len(data.WorkoutMinutes) == 0 {
		return 0
	}
	return data.WorkoutMinutes[len(data.WorkoutMinutes)-1].Value
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}

func without(pool []Suggestion, names []string) []Suggestion {
	out := make([]Suggestion, 0, len(pool))
	for _, s := range pool {
		drop := false
		for _, name := range names {
			if s.Name == name {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, s)
		}
	}
	return out
}

func dedupe(pool []Suggestion) []Suggestion {
	seen := make(map[string]bool, len(pool))
	out := make([]Suggestion, 0, len(pool))
	for _, s := range pool {
		key := strings.ToLower(strings.TrimSpace(s.Name))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func existingNames(items []ListItem) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, item := range items {
		if name := strings.ToLower(strings.TrimSpace(item.Name)); name != "" {
			out[name] = true
		}
	}
	return out
}

func filterExisting(pool []Suggestion, exclude map[string]bool) []Suggestion {
	if len(exclude) == 0 {
		return pool
	}
	out := make([]Suggestion, 0, len(pool))
	for _, s := range pool {
		if exclude[strings.ToLower(strings.TrimSpace(s.Name))] {
			continue
		}
		out = append(out, s)
	}
	return out
}
