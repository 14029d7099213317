package recipe_test

import (
	"context"
	"path/filepath"
	"testing"

	"dinner-planner/internal/database"
	"dinner-planner/internal/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepository(t *testing.T) *recipe.Repository {
	t.Helper()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "recipes.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return recipe.NewRepository(db.SQL)
}

func sampleRecipe() recipe.Recipe {
	return recipe.Recipe{
		Name:              "Lentil Soup",
		Ingredients:       []string{"200g lentils", "1 onion", "1L vegetable stock"},
		Instructions:      "Simmer everything for 30 minutes.",
		PrepTime:          10,
		CookTime:          30,
		Servings:          4,
		MealType:          recipe.MealTypeDinner,
		ProteinType:       recipe.ProteinVegan,
		DietaryTags:       []string{recipe.TagComfort, recipe.TagHealthy},
		WeatherPreference: recipe.WeatherCold,
	}
}

func TestRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, sampleRecipe())
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	found, err := repo.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, found)
}

func TestRepository_SaveUpdatesExisting(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, sampleRecipe())
	require.NoError(t, err)

	saved.Name = "Spiced Lentil Soup"
	saved.DietaryTags = nil
	_, err = repo.Save(ctx, saved)
	require.NoError(t, err)

	found, err := repo.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spiced Lentil Soup", found.Name)
	assert.Empty(t, found.DietaryTags)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRepository_SaveRejectsInvalid(t *testing.T) {
	repo := newTestRepository(t)

	rec := sampleRecipe()
	rec.Ingredients = nil
	_, err := repo.Save(context.Background(), rec)
	assert.ErrorContains(t, err, "at least one ingredient")
}

func TestRepository_GetNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, recipe.ErrNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, sampleRecipe())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))
	assert.ErrorIs(t, repo.Delete(ctx, saved.ID), recipe.ErrNotFound)
}

func TestRepository_SeedSamples(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	inserted, err := repo.SeedSamples(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(recipe.Samples()), inserted)

	t.Run("SecondSeedIsNoop", func(t *testing.T) {
		inserted, err := repo.SeedSamples(ctx)
		require.NoError(t, err)
		assert.Zero(t, inserted)
	})

	recipes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, len(recipe.Samples()))

	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		names = append(names, r.Name)
		assert.NotEmpty(t, r.Ingredients)
	}
	assert.Contains(t, names, "Chicken Stir Fry")
	assert.Contains(t, names, "Fish and Chips")
}
