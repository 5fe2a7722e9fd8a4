package foods

import (
	"net/url"
	"regexp"
	"strings"
)

const imageKeywords = "food,dish,meal,cuisine,cooking"

var nonWord = regexp.MustCompile(`[^A-Za-z0-9_\s]`)

// ImageURL returns an Unsplash featured-image URL for the food. The client
// loads the image directly, so nothing is fetched here.
func ImageURL(foodName string) string {
	query := nonWord.ReplaceAllString(strings.ToLower(strings.TrimSpace(foodName)), "")
	return "https://source.unsplash.com/featured/800x600/?" + encodeURIComponent(query+","+imageKeywords)
}

// encodeURIComponent escapes s the way browsers do for a query component:
// spaces become %20 rather than +.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
