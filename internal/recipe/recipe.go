package recipe

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// MealType is the meal a recipe is meant for. Only dinners are planned.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeDinner    MealType = "dinner"
)

// ProteinType is the main protein source of a recipe.
type ProteinType string

const (
	ProteinMeat       ProteinType = "meat"
	ProteinFish       ProteinType = "fish"
	ProteinVegetarian ProteinType = "vegetarian"
	ProteinVegan      ProteinType = "vegan"
)

// WeatherPreference describes which weather a recipe suits best.
type WeatherPreference string

const (
	WeatherHot  WeatherPreference = "hot"
	WeatherCold WeatherPreference = "cold"
	WeatherAny  WeatherPreference = "any"
)

// Well-known dietary tags used by the planner.
const (
	TagQuick       = "quick"
	TagKidFriendly = "kid-friendly"
	TagComfort     = "comfort"
	TagHealthy     = "healthy"
	TagVegetarian  = "vegetarian"
	TagPescatarian = "pescatarian"
)

// Recipe is a single recipe as stored and planned.
type Recipe struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Ingredients       []string          `json:"ingredients"`
	Instructions      string            `json:"instructions"`
	PrepTime          int               `json:"prep_time"`
	CookTime          int               `json:"cook_time"`
	Servings          int               `json:"servings"`
	MealType          MealType          `json:"meal_type"`
	ProteinType       ProteinType       `json:"protein_type"`
	DietaryTags       []string          `json:"dietary_tags"`
	WeatherPreference WeatherPreference `json:"weather_preference"`
	Source            string            `json:"source,omitempty"`
}

// TotalTime returns prep plus cook time in minutes.
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// HasTag reports whether the recipe carries the given dietary tag.
func (r Recipe) HasTag(tag string) bool {
	return slices.Contains(r.DietaryTags, tag)
}

// IsDinner reports whether the recipe takes part in dinner planning.
func (r Recipe) IsDinner() bool {
	return r.MealType == MealTypeDinner
}

// Validate checks the fields the repository relies on.
func (r Recipe) Validate() error {
	var errs []error
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if len(r.Ingredients) == 0 {
		errs = append(errs, errors.New("at least one ingredient is required"))
	}
	if r.PrepTime < 0 || r.CookTime < 0 {
		errs = append(errs, errors.New("prep and cook time must not be negative"))
	}
	switch r.MealType {
	case MealTypeBreakfast, MealTypeDinner:
	default:
		errs = append(errs, fmt.Errorf("unknown meal type %q", r.MealType))
	}
	switch r.ProteinType {
	case ProteinMeat, ProteinFish, ProteinVegetarian, ProteinVegan:
	default:
		errs = append(errs, fmt.Errorf("unknown protein type %q", r.ProteinType))
	}
	switch r.WeatherPreference {
	case WeatherHot, WeatherCold, WeatherAny:
	default:
		errs = append(errs, fmt.Errorf("unknown weather preference %q", r.WeatherPreference))
	}
	return errors.Join(errs...)
}
