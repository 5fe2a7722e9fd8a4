package foods

// Details is the micronutrient breakdown of an analyzed food.
type Details struct {
	Vitamins          []string `json:"vitamins"`
	Minerals          []string `json:"minerals"`
	HealthBenefits    []string `json:"healthBenefits"`
	PotentialConcerns []string `json:"potentialConcerns"`
	GlycemicIndex     string   `json:"glycemicIndex"`
	FiberContent      *float64 `json:"fiberContent"`
}

type Insight struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

type Recipe struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Ingredients    []string `json:"ingredients"`
	Difficulty     string   `json:"difficulty"`
	PrepTime       string   `json:"prepTime"`
	HealthBenefits string   `json:"healthBenefits"`
}

// Food is a nutrition analysis per standard serving.
type Food struct {
	Name              string    `json:"name"`
	Calories          float64   `json:"calories"`
	Protein           float64   `json:"protein"`
	Carbs             float64   `json:"carbs"`
	Fat               float64   `json:"fat"`
	Image             string    `json:"image"`
	Details           Details   `json:"details"`
	Insights          []Insight `json:"insights"`
	RecipeSuggestions []Recipe  `json:"recipeSuggestions"`
}

// Result sources.
const (
	SourceAI     = "ai"
	SourceSample = "sample"
)

// AnalyzeResult is the POST /foods/analyze payload.
type AnalyzeResult struct {
	Food   Food   `json:"food"`
	Source string `json:"source"`
	Notice string `json:"notice,omitempty"`
}

// GeneratedImage is the POST /food-image/generate payload.
type GeneratedImage struct {
	Success     bool   `json:"success"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Cached      bool   `json:"cached"`
}
