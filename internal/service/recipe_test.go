package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/platepost/backend/internal/models"
	"github.com/platepost/backend/internal/types"
)

func createTestRecipe(t *testing.T, db *gorm.DB, recipes *RecipeService) *models.Recipe {
	t.Helper()
	user := seedUser(t, db, "Alice", "alice@example.com")
	recipe, err := recipes.Create(context.Background(), CreateRecipeInput{
		Name:          "Borscht",
		KitchenID:     1,
		CategoryID:    1,
		UserID:        user.ID,
		CookingTime:   90,
		CookingMethod: "1. Chop\n \n2. Simmer",
		Portion:       4,
		Weight:        "1200",
		Image:         []byte("png"),
		Lines: []types.IngredientLine{
			{IngredientID: 1, Amount: "500", Measure: 1},
			{IngredientID: 2, Amount: "", Measure: 2},
		},
	})
	require.NoError(t, err)
	return recipe
}

func TestCreateRecipe(t *testing.T) {
	db := setupDB(t)
	seedCatalogs(t, db)
	recipes := NewRecipeService(db)

	recipe := createTestRecipe(t, db, recipes)

	assert.Equal(t, models.StatusPending, recipe.Status)
	assert.Equal(t, float64(0), recipe.Rating)
	assert.Equal(t, "Borscht", recipe.Name)
	assert.Equal(t, "Italian", recipe.Kitchen.Name)
	assert.Equal(t, "Alice", recipe.User.Name)

	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "Beetroot", recipe.Ingredients[0].Ingredient.Name)
	assert.Equal(t, "500", recipe.Ingredients[0].Amount)
	assert.Equal(t, "g", recipe.Ingredients[0].Measure.Name)
	assert.Equal(t, "Salt", recipe.Ingredients[1].Ingredient.Name)
	assert.Empty(t, recipe.Ingredients[1].Amount)
	assert.Equal(t, "To taste", recipe.Ingredients[1].Measure.Name)

	var joinRows int64
	require.NoError(t, db.Model(&models.RecipeIngredient{}).Count(&joinRows).Error)
	assert.Equal(t, int64(2), joinRows)
}

func TestGetRecipeNotFound(t *testing.T) {
	db := setupDB(t)
	recipes := NewRecipeService(db)

	_, err := recipes.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestListExcludesPending(t *testing.T) {
	db := setupDB(t)
	seedCatalogs(t, db)
	recipes := NewRecipeService(db)

	recipe := createTestRecipe(t, db, recipes)

	// Fresh submissions are pending and stay out of the listing.
	listed, err := recipes.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, listed)

	require.NoError(t, db.Model(&models.Recipe{}).Where("id = ?", recipe.ID).
		Update("status", models.StatusApproved).Error)

	listed, err = recipes.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Borscht", listed[0].Name)
}

func TestListTitleFilter(t *testing.T) {
	db := setupDB(t)
	seedCatalogs(t, db)
	recipes := NewRecipeService(db)

	recipe := createTestRecipe(t, db, recipes)
	require.NoError(t, db.Model(&models.Recipe{}).Where("id = ?", recipe.ID).
		Update("status", models.StatusApproved).Error)

	listed, err := recipes.List(context.Background(), "ORSch")
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	listed, err = recipes.List(context.Background(), "pizza")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestLikedUserIDs(t *testing.T) {
	db := setupDB(t)
	seedCatalogs(t, db)
	recipes := NewRecipeService(db)

	recipe := createTestRecipe(t, db, recipes)

	ids, err := recipes.LikedUserIDs(context.Background(), recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	fan := seedUser(t, db, "Bob", "bob@example.com")
	require.NoError(t, db.Create(&models.Like{UserID: fan.ID, RecipeID: recipe.ID}).Error)

	ids, err = recipes.LikedUserIDs(context.Background(), recipe.ID)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, fan.ID, ids[0])
}
