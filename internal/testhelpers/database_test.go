package testhelpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platepost/backend/internal/service"
	"github.com/platepost/backend/internal/types"
)

// End-to-end check against a real postgres: register, submit, approve, like.
func TestRecipeFlowAgainstPostgres(t *testing.T) {
	db := SetupTestDatabase(t)
	ctx := context.Background()

	auth := service.NewAuthService(db, nil, "test-secret")
	recipes := service.NewRecipeService(db)
	engagement := service.NewEngagementService(db)
	catalog := service.NewCatalogService(db, nil)

	require.NoError(t, db.Exec("INSERT INTO kitchens (name) VALUES ('Italian')").Error)
	require.NoError(t, db.Exec("INSERT INTO categories (name) VALUES ('Soup')").Error)
	require.NoError(t, db.Exec("INSERT INTO measures (name) VALUES ('g'), ('To taste')").Error)
	require.NoError(t, db.Exec("INSERT INTO ingredients (name) VALUES ('Beetroot'), ('Salt')").Error)

	author, _, err := auth.Register("Alice", "alice@example.com", "password123", nil)
	require.NoError(t, err)
	fan, _, err := auth.Register("Bob", "bob@example.com", "password123", nil)
	require.NoError(t, err)

	ingredients, err := catalog.SearchIngredients(ctx, "beet")
	require.NoError(t, err)
	require.Len(t, ingredients, 1)

	recipe, err := recipes.Create(ctx, service.CreateRecipeInput{
		Name:          "Borscht",
		KitchenID:     1,
		CategoryID:    1,
		UserID:        author.ID,
		CookingTime:   90,
		CookingMethod: "1. Chop\n \n2. Simmer",
		Portion:       4,
		Weight:        "1200",
		Image:         []byte("png"),
		Lines: []types.IngredientLine{
			{IngredientID: ingredients[0].Value, Amount: "500", Measure: 1},
			{IngredientID: 2, Measure: 2},
		},
	})
	require.NoError(t, err)
	assert.Len(t, recipe.Ingredients, 2)

	liked, count, err := engagement.ToggleLike(ctx, fan.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, count)

	ids, err := recipes.LikedUserIDs(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, fan.ID, ids[0])
}
