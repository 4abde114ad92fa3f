package recipe

import (
	"Recipe-Box/domain"
	"strings"
)

// Filter returns the recipes whose name or ingredients contain query,
// ignoring case, in their original order. The input slice is never modified.
func Filter(recipes []domain.Recipe, query string) []domain.Recipe {
	if query == "" {
		return recipes
	}

	needle := strings.ToLower(query)
	matched := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if strings.Contains(strings.ToLower(r.Name), needle) ||
			strings.Contains(strings.ToLower(r.Ingredients), needle) {
			matched = append(matched, r)
		}
	}
	return matched
}
