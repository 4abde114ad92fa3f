package recipe

import (
	"Recipe-Box/domain"
	"Recipe-Box/entities"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entities.Recipe{}))
	return db
}

func TestRecipeRepository_ListAllOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	rows := []entities.Recipe{
		{Name: "Toast", Ingredients: "bread", Instructions: "toast", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Jam", Ingredients: "berries", Instructions: "cook", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Soup", Ingredients: "water", Instructions: "boil", CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, db.Create(&rows).Error)

	got, err := NewRecipeRepository(db).ListAll(context.Background())
	require.NoError(t, err)

	var names []string
	for _, r := range got {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Jam", "Soup", "Toast"}, names)
}

func TestRecipeRepository_ListAllEmptyTable(t *testing.T) {
	got, err := NewRecipeRepository(newTestDB(t)).ListAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecipeRepository_InsertOneAssignsIDAndTimestamp(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))

	first, err := repo.InsertOne(context.Background(), domain.NewRecipeRequest{Name: "Toast", Ingredients: "bread", Instructions: "toast"})
	require.NoError(t, err)
	second, err := repo.InsertOne(context.Background(), domain.NewRecipeRequest{Name: "Soup", Ingredients: "water, salt", Instructions: "boil"})
	require.NoError(t, err)

	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
	assert.False(t, second.CreatedAt.IsZero())
	assert.Equal(t, "water, salt", second.Ingredients)
}

func TestRecipeRepository_DeleteByID(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	created, err := repo.InsertOne(context.Background(), domain.NewRecipeRequest{Name: "Toast", Ingredients: "bread", Instructions: "toast"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(context.Background(), created.ID))
	require.NoError(t, repo.DeleteByID(context.Background(), created.ID))

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecipeRepository_FailuresAreGatewayErrors(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	var gwErr *domain.GatewayError

	_, err = repo.ListAll(context.Background())
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "list", gwErr.Op)

	_, err = repo.InsertOne(context.Background(), domain.NewRecipeRequest{Name: "a", Ingredients: "b", Instructions: "c"})
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, domain.MessageFailedAddRecipe, gwErr.Message)

	err = repo.DeleteByID(context.Background(), 1)
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "delete", gwErr.Op)
}
