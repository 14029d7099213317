package app

import (
	"context"
	"fmt"

	"dinner-planner/internal/storage"

	"go.uber.org/zap"
)

// ExportRecipes writes every stored recipe to dir, one JSON file each.
func (a *App) ExportRecipes(ctx context.Context, dir string) (int, error) {
	files, err := storage.NewRecipeFiles(dir)
	if err != nil {
		return 0, err
	}

	recipes, err := a.recipes.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list recipes: %w", err)
	}
	for _, rec := range recipes {
		if err := files.Save(rec); err != nil {
			return 0, err
		}
	}

	a.logger.Info("exported recipes", zap.Int("count", len(recipes)), zap.String("dir", dir))
	return len(recipes), nil
}

// LoadRecipes stores every recipe file found in dir. Recipes keep their
// IDs, so loading the same export twice updates rather than duplicates.
func (a *App) LoadRecipes(ctx context.Context, dir string) (int, error) {
	files, err := storage.NewRecipeFiles(dir)
	if err != nil {
		return 0, err
	}

	recipes, err := files.LoadAll()
	if err != nil {
		return 0, err
	}
	for _, rec := range recipes {
		if _, err := a.recipes.Save(ctx, rec); err != nil {
			return 0, fmt.Errorf("failed to save recipe %q: %w", rec.Name, err)
		}
	}

	a.logger.Info("loaded recipes", zap.Int("count", len(recipes)), zap.String("dir", dir))
	return len(recipes), nil
}
