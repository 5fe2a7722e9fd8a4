package suggestions

import "strings"

// CatalogSuggester draws plain item names from the category catalogs, biased
// by the user's described diet.
type CatalogSuggester struct {
	rnd Rand
}

// NewCatalogSuggester returns a CatalogSuggester drawing from rnd, or from the
// shared math/rand/v2 source when rnd is nil.
func NewCatalogSuggester(rnd Rand) *CatalogSuggester {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &CatalogSuggester{rnd: rnd}
}

// Suggest returns 5 to 7 item names not already on the existing list.
func (s *CatalogSuggester) Suggest(diet string, existing []ListItem) []string {
	var names []string
	for _, catalog := range [][]string{fruitCatalog, vegetableCatalog, proteinCatalog, dairyCatalog, grainCatalog, snackCatalog, dietCatalog(diet)} {
		names = append(names, catalog...)
	}

	pool := make([]Suggestion, 0, len(names))
	for _, name := range names {
		pool = append(pool, Suggestion{Name: name})
	}
	pool = filterExisting(dedupe(pool), existingNames(existing))

	picked := pick(s.rnd, pool)
	out := make([]string, 0, len(picked))
	for _, p := range picked {
		out = append(out, p.Name)
	}
	return out
}

func dietCatalog(diet string) []string {
	d := strings.ToLower(diet)
	switch {
	case strings.Contains(d, "vegan") || strings.Contains(d, "vegetarian"):
		return plantBasedCatalog
	case strings.Contains(d, "keto") || strings.Contains(d, "low carb"):
		return ketoCatalog
	case strings.Contains(d, "gluten free"):
		return glutenFreeCatalog
	case strings.Contains(d, "high protein"):
		return highProteinCatalog
	default:
		return nil
	}
}
