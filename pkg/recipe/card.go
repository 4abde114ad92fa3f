package recipe

import (
	"Recipe-Box/domain"
	"context"
	"sync"
)

// Card is one recipe in the presentation list. Expanded is local to the
// card and never touches the store.
type Card struct {
	Recipe   domain.Recipe
	Expanded bool
}

func NewCard(r domain.Recipe) *Card {
	return &Card{Recipe: r}
}

func (c *Card) IngredientsText() string {
	if c.Expanded {
		return c.Recipe.Ingredients
	}
	return truncate(c.Recipe.Ingredients, domain.IngredientsPreviewLength)
}

func (c *Card) InstructionsText() string {
	if c.Expanded {
		return c.Recipe.Instructions
	}
	return truncate(c.Recipe.Instructions, domain.InstructionsPreviewLength)
}

// CanToggle reports whether either field is long enough to be truncated.
func (c *Card) CanToggle() bool {
	return runeLen(c.Recipe.Ingredients) > domain.IngredientsPreviewLength ||
		runeLen(c.Recipe.Instructions) > domain.InstructionsPreviewLength
}

func (c *Card) Toggle() {
	if !c.CanToggle() {
		return
	}
	c.Expanded = !c.Expanded
}

func (c *Card) View(deleting bool) domain.RecipeCard {
	return domain.RecipeCard{
		ID:           c.Recipe.ID,
		Name:         c.Recipe.Name,
		Ingredients:  c.IngredientsText(),
		Instructions: c.InstructionsText(),
		CreatedAt:    c.Recipe.CreatedAt,
		Expanded:     c.Expanded,
		CanToggle:    c.CanToggle(),
		Deleting:     deleting,
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + domain.PreviewEllipsis
}

func runeLen(s string) int {
	return len([]rune(s))
}

type DeleteState int

const (
	DeleteIdle DeleteState = iota
	DeleteConfirming
	DeleteDeleting
)

func (s DeleteState) String() string {
	switch s {
	case DeleteIdle:
		return "idle"
	case DeleteConfirming:
		return "confirming"
	case DeleteDeleting:
		return "deleting"
	default:
		return "unknown"
	}
}

type RecipeRemover interface {
	Remove(ctx context.Context, id int64) error
}

// DeleteAffordance is the per-card delete button:
// idle -> confirming -> (idle | deleting -> idle).
type DeleteAffordance struct {
	id int64

	mu    sync.Mutex
	state DeleteState
}

func NewDeleteAffordance(id int64) *DeleteAffordance {
	return &DeleteAffordance{id: id}
}

func (d *DeleteAffordance) State() DeleteState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Disabled is true while the delete request is outstanding.
func (d *DeleteAffordance) Disabled() bool {
	return d.State() == DeleteDeleting
}

func (d *DeleteAffordance) Request() error {
	return d.transition(DeleteIdle, DeleteConfirming)
}

func (d *DeleteAffordance) Decline() error {
	return d.transition(DeleteConfirming, DeleteIdle)
}

// Accept sends the delete and returns to idle whatever the outcome.
func (d *DeleteAffordance) Accept(ctx context.Context, remover RecipeRemover) error {
	if err := d.transition(DeleteConfirming, DeleteDeleting); err != nil {
		return err
	}
	defer func() {
		d.mu.Lock()
		d.state = DeleteIdle
		d.mu.Unlock()
	}()
	return remover.Remove(ctx, d.id)
}

func (d *DeleteAffordance) transition(from, to DeleteState) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != from {
		return domain.ErrInvalidDeleteTransition
	}
	d.state = to
	return nil
}
