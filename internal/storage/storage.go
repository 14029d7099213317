package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"dinner-planner/internal/recipe"
)

// RecipeFiles stores recipes as one JSON file each, for backups and for
// sharing collections between installs.
type RecipeFiles struct {
	basePath string
}

// NewRecipeFiles creates a RecipeFiles store and ensures the base directory exists.
func NewRecipeFiles(basePath string) (*RecipeFiles, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &RecipeFiles{basePath: basePath}, nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// path returns the file for a recipe ID, made safe for filenames.
func (s *RecipeFiles) path(id string) string {
	return filepath.Join(s.basePath, unsafeChars.ReplaceAllString(id, "-")+".json")
}

// Save writes rec to <id>.json, replacing any previous version.
func (s *RecipeFiles) Save(rec recipe.Recipe) error {
	if rec.ID == "" {
		return fmt.Errorf("recipe %q has no id", rec.Name)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recipe: %w", err)
	}

	if err := os.WriteFile(s.path(rec.ID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write recipe file: %w", err)
	}
	return nil
}

// Load reads a single recipe by ID.
func (s *RecipeFiles) Load(id string) (recipe.Recipe, error) {
	return readRecipe(s.path(id))
}

// Exists reports whether a file for the recipe ID exists.
func (s *RecipeFiles) Exists(id string) bool {
	_, err := os.Stat(s.path(id))
	return !os.IsNotExist(err)
}

// LoadAll reads every *.json file in the directory, sorted by filename.
func (s *RecipeFiles) LoadAll() ([]recipe.Recipe, error) {
	matches, err := filepath.Glob(filepath.Join(s.basePath, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe files: %w", err)
	}
	sort.Strings(matches)

	recipes := make([]recipe.Recipe, 0, len(matches))
	for _, match := range matches {
		rec, err := readRecipe(match)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, nil
}

func readRecipe(path string) (recipe.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return recipe.Recipe{}, fmt.Errorf("failed to read recipe file: %w", err)
	}

	var rec recipe.Recipe
	if err := json.Unmarshal(data, &rec); err != nil {
		return recipe.Recipe{}, fmt.Errorf("failed to unmarshal recipe %s: %w", filepath.Base(path), err)
	}
	return rec, nil
}
