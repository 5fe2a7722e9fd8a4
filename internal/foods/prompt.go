package foods

import (
	"fmt"
	"strings"
)

const analysisSystemPrompt = "You are a professional nutritionist AI that analyzes food and provides accurate nutritional information. Always return valid JSON with realistic values."

const analysisTemplate = `Analyze the nutritional content of %s.
Return a valid JSON object with this exact structure:
{
  "name": "Food name",
  "calories": number,
  "protein": number in grams,
  "carbs": number in grams,
  "fat": number in grams,
  "details": {
    "vitamins": ["Vitamin A", "Vitamin C"],
    "minerals": ["Iron", "Calcium"],
    "healthBenefits": ["Benefit 1", "Benefit 2"],
    "potentialConcerns": ["Any concerns"],
    "glycemicIndex": "Low/Medium/High",
    "fiberContent": number
  },
  "insights": [
    {"text": "Insight 1", "type": "protein"},
    {"text": "Insight 2", "type": "general"}
  ],
  "recipeSuggestions": [
    {
      "name": "Recipe 1",
      "description": "Description",
      "ingredients": ["Ingredient 1", "Ingredient 2"],
      "difficulty": "Easy",
      "prepTime": "15 mins",
      "healthBenefits": "Benefits"
    }
  ]
}
Ensure all numbers are realistic and based on standard serving sizes. Return only valid JSON with no extra text.`

func analysisPrompt(query string) string {
	subject := strings.TrimSpace(query)
	if subject == "" {
		subject = "the food in the image"
	}
	return fmt.Sprintf(analysisTemplate, subject)
}

func descriptionPrompt(foodName, description string) string {
	var b strings.Builder
	b.WriteString("Generate a detailed visual description of ")
	b.WriteString(foodName)
	if d := strings.TrimSpace(description); d != "" {
		b.WriteString(" (")
		b.WriteString(d)
		b.WriteString(")")
	}
	b.WriteString(". Focus on its appearance, colors, textures, garnishes, and presentation. Make it suitable for a professional food photographer.")
	return b.String()
}
