package recipe

import (
	"Recipe-Box/domain"
)

// BuildList renders the store contents for one view: the filtered cards,
// the placeholder when nothing is visible, and the loading/error banner.
// expanded holds the ids of cards the viewer has toggled open.
func BuildList(store RecipeStore, query string, expanded map[int64]bool) domain.RecipeListResponse {
	all := store.Recipes()
	visible := Filter(all, query)

	cards := make([]domain.RecipeCard, 0, len(visible))
	for _, r := range visible {
		card := NewCard(r)
		if expanded[r.ID] {
			card.Toggle()
		}
		cards = append(cards, card.View(store.Deleting(r.ID)))
	}

	return domain.RecipeListResponse{
		Recipes:     cards,
		Total:       len(all),
		Visible:     len(cards),
		SearchTerm:  query,
		Placeholder: placeholder(len(cards), query),
		Loading:     store.Loading(),
		Error:       store.Error(),
	}
}

func placeholder(visible int, query string) string {
	if visible > 0 {
		return ""
	}
	if query != "" {
		return domain.MessageNoSearchResult
	}
	return domain.MessageNoRecipes
}
