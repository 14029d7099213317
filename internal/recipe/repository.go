package recipe

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a recipe id has no row.
var ErrNotFound = errors.New("recipe not found")

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository is a database-backed repository for recipes.
type Repository struct {
	q  dbtx
	db *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{q: d, db: d}
}

// WithTx returns a new Repository that uses the provided transaction.
func (r *Repository) WithTx(tx *sql.Tx) *Repository {
	return &Repository{q: tx, db: r.db}
}

const recipeColumns = `id, name, ingredients, instructions, prep_time, cook_time, servings,
	meal_type, protein_type, dietary_tags, weather_preference, source`

// Save inserts or updates a recipe and returns it with its id set.
func (r *Repository) Save(ctx context.Context, rec Recipe) (Recipe, error) {
	if err := rec.Validate(); err != nil {
		return Recipe{}, fmt.Errorf("invalid recipe %q: %w", rec.Name, err)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	ingredientsJSON, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return Recipe{}, fmt.Errorf("failed to marshal ingredients: %w", err)
	}
	tags := rec.DietaryTags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return Recipe{}, fmt.Errorf("failed to marshal dietary tags: %w", err)
	}

	_, err = r.q.ExecContext(ctx, `
		INSERT INTO recipes (`+recipeColumns+`, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			ingredients = excluded.ingredients,
			instructions = excluded.instructions,
			prep_time = excluded.prep_time,
			cook_time = excluded.cook_time,
			servings = excluded.servings,
			meal_type = excluded.meal_type,
			protein_type = excluded.protein_type,
			dietary_tags = excluded.dietary_tags,
			weather_preference = excluded.weather_preference,
			source = excluded.source,
			updated_at = excluded.updated_at`,
		rec.ID, rec.Name, string(ingredientsJSON), rec.Instructions, rec.PrepTime, rec.CookTime, rec.Servings,
		rec.MealType, rec.ProteinType, string(tagsJSON), rec.WeatherPreference, rec.Source,
		time.Now().UTC(),
	)
	if err != nil {
		return Recipe{}, fmt.Errorf("failed to save recipe %q: %w", rec.Name, err)
	}
	return rec, nil
}

// Get retrieves a recipe by its ID.
func (r *Repository) Get(ctx context.Context, id string) (Recipe, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)
	rec, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Recipe{}, ErrNotFound
		}
		return Recipe{}, fmt.Errorf("failed to get recipe by ID: %w", err)
	}
	return rec, nil
}

// List retrieves all recipes, newest first.
func (r *Repository) List(ctx context.Context) ([]Recipe, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// Delete removes a recipe. Deleting an unknown id returns ErrNotFound.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of recipes in the database.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

// SeedSamples inserts the sample dinners when the store is empty.
// It returns the number of recipes inserted.
func (r *Repository) SeedSamples(ctx context.Context) (int, error) {
	count, err := r.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	txRepo := r.WithTx(tx)
	inserted := 0
	for _, sample := range Samples() {
		if _, err := txRepo.Save(ctx, sample); err != nil {
			return 0, err
		}
		inserted++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return inserted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (Recipe, error) {
	var (
		rec             Recipe
		ingredientsJSON string
		tagsJSON        string
	)
	err := row.Scan(
		&rec.ID, &rec.Name, &ingredientsJSON, &rec.Instructions, &rec.PrepTime, &rec.CookTime, &rec.Servings,
		&rec.MealType, &rec.ProteinType, &tagsJSON, &rec.WeatherPreference, &rec.Source,
	)
	if err != nil {
		return Recipe{}, err
	}
	if err := json.Unmarshal([]byte(ingredientsJSON), &rec.Ingredients); err != nil {
		return Recipe{}, fmt.Errorf("failed to unmarshal ingredients for %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(tagsJSON), &rec.DietaryTags); err != nil {
		return Recipe{}, fmt.Errorf("failed to unmarshal dietary tags for %s: %w", rec.ID, err)
	}
	return rec, nil
}
