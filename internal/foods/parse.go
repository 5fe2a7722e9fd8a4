package foods

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"annadata-backend/internal/llm"
)

var errNoJSON = errors.New("could not extract valid JSON from the response")

type rawAnalysis struct {
	Name              string    `json:"name"`
	Calories          float64   `json:"calories"`
	Protein           float64   `json:"protein"`
	Carbs             float64   `json:"carbs"`
	Fat               float64   `json:"fat"`
	Details           *Details  `json:"details"`
	Insights          []Insight `json:"insights"`
	RecipeSuggestions []Recipe  `json:"recipeSuggestions"`
}

// parseAnalysis decodes a model answer, filling the gaps models commonly
// leave with neutral defaults.
func parseAnalysis(raw, query string) (Food, error) {
	obj, ok := llm.ExtractJSONObject(raw)
	if !ok {
		return Food{}, errNoJSON
	}
	var in rawAnalysis
	if err := json.Unmarshal([]byte(obj), &in); err != nil {
		return Food{}, fmt.Errorf("decode analysis: %w", err)
	}

	f := Food{
		Name:              strings.TrimSpace(in.Name),
		Calories:          nonNegative(in.Calories),
		Protein:           nonNegative(in.Protein),
		Carbs:             nonNegative(in.Carbs),
		Fat:               nonNegative(in.Fat),
		RecipeSuggestions: in.RecipeSuggestions,
	}
	if f.Name == "" {
		f.Name = strings.TrimSpace(query)
	}
	if f.Name == "" {
		f.Name = "Unknown Food"
	}
	f.Image = "https://source.unsplash.com/random/300x200/?" + encodeURIComponent(f.Name)

	if in.Details != nil {
		f.Details = *in.Details
	} else {
		f.Details = Details{
			Vitamins:       []string{"Not available"},
			Minerals:       []string{"Not available"},
			HealthBenefits: []string{"General nutritional benefits"},
			GlycemicIndex:  "Not specified",
		}
	}
	if f.Details.PotentialConcerns == nil {
		f.Details.PotentialConcerns = []string{}
	}
	if f.RecipeSuggestions == nil {
		f.RecipeSuggestions = []Recipe{}
	}

	for _, insight := range in.Insights {
		if strings.TrimSpace(insight.Text) != "" {
			f.Insights = append(f.Insights, insight)
		}
	}
	if len(f.Insights) == 0 {
		f.Insights = []Insight{
			{Text: fmt.Sprintf("%s contains %gg of protein.", f.Name, f.Protein), Type: "protein"},
			{Text: fmt.Sprintf("Contains %g calories per serving.", f.Calories), Type: "general"},
		}
	}
	return f, nil
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
