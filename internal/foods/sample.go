package foods

import "fmt"

const (
	noticeUnavailable   = "AI service temporarily unavailable. Using sample data for demonstration."
	noticeFailed        = "AI analysis failed. Showing sample data."
	noticeNotConfigured = "AI analysis is not configured. Showing sample data."
)

// SampleFood is served whenever the AI analysis cannot answer.
func SampleFood() Food {
	fiber := 4.0
	f := Food{
		Name:     "Mixed Salad",
		Calories: 120,
		Protein:  3,
		Carbs:    12,
		Fat:      8,
		Image:    "https://source.unsplash.com/featured/?" + encodeURIComponent("Mixed Salad") + ",food,healthy",
		Details: Details{
			Vitamins:          []string{"Vitamin A", "Vitamin C", "Vitamin K"},
			Minerals:          []string{"Iron", "Potassium"},
			HealthBenefits:    []string{"Rich in nutrients", "High in fiber", "Low in calories", "Good for digestion"},
			PotentialConcerns: []string{},
			GlycemicIndex:     "Low",
			FiberContent:      &fiber,
		},
		RecipeSuggestions: []Recipe{},
	}
	f.Insights = []Insight{
		{Text: fmt.Sprintf("%s contains %gg of protein - a light protein source.", f.Name, f.Protein), Type: "protein"},
		{Text: fmt.Sprintf("Only %g calories per serving, perfect for weight management.", f.Calories), Type: "general"},
		{Text: fmt.Sprintf("High in fiber with %gg per serving, great for digestive health.", fiber), Type: "carbs"},
	}
	return f
}
