package recipe

import (
	"Recipe-Box/domain"
	"Recipe-Box/entities"
	"context"
	"github.com/gofiber/fiber/v2/utils"
	"gorm.io/gorm"
)

type (
	// RecipeRepository is the storage gateway for the recipes table.
	RecipeRepository interface {
		ListAll(ctx context.Context) ([]domain.Recipe, error)
		InsertOne(ctx context.Context, req domain.NewRecipeRequest) (domain.Recipe, error)
		DeleteByID(ctx context.Context, id int64) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) ListAll(ctx context.Context) ([]domain.Recipe, error) {
	var rows []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Find(&rows).Error; err != nil {
		return nil, &domain.GatewayError{Op: "list", Message: domain.MessageFailedLoadRecipes, Err: err}
	}

	recipes := make([]domain.Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, toDomain(row))
	}
	return recipes, nil
}

// InsertOne copies the request strings, which may alias a reused request
// buffer, so the returned record owns its data.
func (r *recipeRepository) InsertOne(ctx context.Context, req domain.NewRecipeRequest) (domain.Recipe, error) {
	row := entities.Recipe{
		Name:         utils.CopyString(req.Name),
		Ingredients:  utils.CopyString(req.Ingredients),
		Instructions: utils.CopyString(req.Instructions),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Recipe{}, &domain.GatewayError{Op: "insert", Message: domain.MessageFailedAddRecipe, Err: err}
	}
	return toDomain(&row), nil
}

// DeleteByID does not distinguish a missing id from a deleted one.
func (r *recipeRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Recipe{}).Error; err != nil {
		return &domain.GatewayError{Op: "delete", Message: domain.MessageFailedDeleteRecipe, Err: err}
	}
	return nil
}

func toDomain(row *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:           row.ID,
		Name:         row.Name,
		Ingredients:  row.Ingredients,
		Instructions: row.Instructions,
		CreatedAt:    row.CreatedAt,
	}
}
