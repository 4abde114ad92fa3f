package handlers

import (
	"Recipe-Box/domain"
	"Recipe-Box/internal/api/presenters"
	"Recipe-Box/pkg/recipe"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"strconv"
	"strings"
	"sync"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		ReloadRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeStore recipe.RecipeStore
		validator   *validator.Validate

		// one delete affordance per recipe id, shared by concurrent requests
		affordances sync.Map
	}
)

func NewRecipeHandler(recipeStore recipe.RecipeStore, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeStore: recipeStore,
		validator:   validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	search := c.Query("search", "")
	expanded := parseExpanded(c.Query("expanded", ""))

	res := recipe.BuildList(h.recipeStore, search, expanded)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) AddRecipe(c *fiber.Ctx) error {
	req := new(domain.NewRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	form := recipe.NewEntryForm(h.validator)
	form.SetFields(*req)

	res, err := form.Submit(c.Context(), h.recipeStore)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidRecipe, err)
		}
		return storeErrorResponse(c, domain.MessageFailedAddRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, domain.ErrInvalidRecipeID)
	}

	affordance := h.deleteAffordance(id)
	if err := affordance.Request(); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedDeleteRecipe, err)
	}

	if !c.QueryBool("confirm", false) {
		// this request moved the affordance to confirming, so declining cannot fail
		_ = affordance.Decline()
		return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedDeleteConfirm, domain.ErrDeleteNotConfirmed)
	}

	if err := affordance.Accept(c.Context(), h.recipeStore); err != nil {
		return storeErrorResponse(c, domain.MessageFailedDeleteRecipe, err)
	}
	h.affordances.Delete(id)

	return presenters.SuccessResponse(c, fiber.Map{"id": id}, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) ReloadRecipes(c *fiber.Ctx) error {
	if err := h.recipeStore.Load(c.Context()); err != nil {
		return storeErrorResponse(c, domain.MessageFailedLoadRecipes, err)
	}

	res := recipe.BuildList(h.recipeStore, "", nil)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReloadRecipes)
}

func (h *recipeHandler) deleteAffordance(id int64) *recipe.DeleteAffordance {
	v, _ := h.affordances.LoadOrStore(id, recipe.NewDeleteAffordance(id))
	return v.(*recipe.DeleteAffordance)
}

func storeErrorResponse(c *fiber.Ctx, message string, err error) error {
	var gwErr *domain.GatewayError
	switch {
	case errors.As(err, &gwErr):
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, gwErr.Message, nil)
	case errors.Is(err, domain.ErrSubmissionInFlight), errors.Is(err, domain.ErrDeleteInFlight):
		return presenters.ErrorResponse(c, fiber.StatusConflict, message, err)
	case errors.Is(err, domain.ErrStoreDisposed):
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, message, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, nil)
	}
}

// parseExpanded reads a comma separated id list; malformed ids are skipped.
func parseExpanded(raw string) map[int64]bool {
	expanded := make(map[int64]bool)
	if raw == "" {
		return expanded
	}
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		expanded[id] = true
	}
	return expanded
}
