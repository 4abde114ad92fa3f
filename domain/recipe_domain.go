package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes    = "success get recipes"
	MessageSuccessAddRecipe     = "recipe added successfully"
	MessageSuccessDeleteRecipe  = "recipe deleted successfully"
	MessageSuccessReloadRecipes = "recipes reloaded successfully"

	MessageFailedLoadRecipes   = "Failed to load recipes. Please try again."
	MessageFailedAddRecipe     = "Failed to add recipe. Please try again."
	MessageFailedDeleteRecipe  = "Failed to delete recipe. Please try again."
	MessageFailedInvalidRecipe = "recipe name, ingredients and instructions are required"
	MessageFailedDeleteConfirm = "recipe deletion was not confirmed"

	MessageNoRecipes      = "No recipes yet! Add your first recipe above."
	MessageNoSearchResult = "No recipes found matching your search"

	ErrInvalidRecipeID         = errors.New("invalid recipe id")
	ErrSubmissionInFlight      = errors.New("recipe submission already in progress")
	ErrDeleteInFlight          = errors.New("recipe deletion already in progress")
	ErrDeleteNotConfirmed      = errors.New("recipe deletion not confirmed")
	ErrInvalidDeleteTransition = errors.New("invalid delete state transition")
	ErrStoreDisposed           = errors.New("recipe store disposed")
)

const (
	IngredientsPreviewLength  = 100
	InstructionsPreviewLength = 150
	PreviewEllipsis           = "..."
)

type (
	Recipe struct {
		ID           int64     `json:"id"`
		Name         string    `json:"name"`
		Ingredients  string    `json:"ingredients"`
		Instructions string    `json:"instructions"`
		CreatedAt    time.Time `json:"created_at"`
	}

	// NewRecipeRequest carries only what a user types; id and created_at
	// are assigned by the database.
	NewRecipeRequest struct {
		Name         string `json:"name" validate:"required"`
		Ingredients  string `json:"ingredients" validate:"required"`
		Instructions string `json:"instructions" validate:"required"`
	}

	RecipeCard struct {
		ID           int64     `json:"id"`
		Name         string    `json:"name"`
		Ingredients  string    `json:"ingredients"`
		Instructions string    `json:"instructions"`
		CreatedAt    time.Time `json:"created_at"`
		Expanded     bool      `json:"expanded"`
		CanToggle    bool      `json:"can_toggle"`
		Deleting     bool      `json:"deleting"`
	}

	RecipeListResponse struct {
		Recipes     []RecipeCard `json:"recipes"`
		Total       int          `json:"total"`
		Visible     int          `json:"visible"`
		SearchTerm  string       `json:"search_term"`
		Placeholder string       `json:"placeholder,omitempty"`
		Loading     bool         `json:"loading"`
		Error       string       `json:"error,omitempty"`
	}
)

// GatewayError is any failure of the recipes table: connectivity, auth or
// query rejection. Message is the only text shown to users.
type GatewayError struct {
	Op      string
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
