package app

import (
	"context"
	"fmt"
	"time"

	"dinner-planner/internal/metrics"
	"dinner-planner/internal/planner"
	"dinner-planner/internal/recipe"
	"dinner-planner/internal/shopping"
	"dinner-planner/internal/weather"

	"go.uber.org/zap"
)

// RecipeStore is the recipe pool the planner draws from.
type RecipeStore interface {
	List(ctx context.Context) ([]recipe.Recipe, error)
	Save(ctx context.Context, rec recipe.Recipe) (recipe.Recipe, error)
	SeedSamples(ctx context.Context) (int, error)
}

// RecipeClipper extracts a recipe from a web page.
type RecipeClipper interface {
	Clip(ctx context.Context, url string) (recipe.Recipe, error)
}

// WeatherSource says where a plan's weather came from.
type WeatherSource string

const (
	WeatherLive     WeatherSource = "live"
	WeatherManual   WeatherSource = "manual"
	WeatherFallback WeatherSource = "fallback"
)

// PlanOptions tweak a single planning cycle.
type PlanOptions struct {
	// Weather overrides the live lookup when set.
	Weather *weather.Classification
}

// Result is one planning cycle: the week's dinners and what to buy.
type Result struct {
	WeekStart     time.Time        `json:"week_start"`
	Weather       weather.Report   `json:"weather"`
	WeatherSource WeatherSource    `json:"weather_source"`
	Plan          planner.Plan     `json:"plan"`
	ShoppingList  []shopping.Entry `json:"shopping_list"`
}

// App holds the application's dependencies.
type App struct {
	recipes     RecipeStore
	weather     weather.Provider
	mealPlanner *planner.Planner
	clipper     RecipeClipper
	metrics     *metrics.Recorder
	logger      *zap.Logger
	now         func() time.Time
}

// NewApp creates and initializes a new App instance. A nil weather
// provider plans every week as moderate.
func NewApp(
	recipes RecipeStore,
	weatherProvider weather.Provider,
	mealPlanner *planner.Planner,
	recipeClipper RecipeClipper,
	recorder *metrics.Recorder,
	logger *zap.Logger,
) *App {
	if weatherProvider == nil {
		weatherProvider = weather.Static(weather.Moderate())
	}
	return &App{
		recipes:     recipes,
		weather:     weatherProvider,
		mealPlanner: mealPlanner,
		clipper:     recipeClipper,
		metrics:     recorder,
		logger:      logger,
		now:         time.Now,
	}
}

// GenerateMealPlan plans next week's dinners from the stored recipes and
// derives the shopping list. Nothing is persisted.
func (a *App) GenerateMealPlan(ctx context.Context, opts PlanOptions) (Result, error) {
	start := a.now()

	recipes, err := a.recipes.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list recipes: %w", err)
	}

	report, source := a.currentWeather(ctx, opts)
	plan := a.mealPlanner.BuildPlan(recipes, report.Classification)
	list := shopping.BuildList(plan)

	emptyDays := len(plan) - len(plan.Dinners())
	a.metrics.ObservePlan(report.String(), len(recipes), emptyDays, a.now().Sub(start))
	a.logger.Info("generated meal plan",
		zap.Int("recipes", len(recipes)),
		zap.String("weather", report.String()),
		zap.String("weather_source", string(source)),
		zap.Int("empty_days", emptyDays),
		zap.Int("shopping_items", len(list)),
	)

	return Result{
		WeekStart:     planner.GetNextMonday(start),
		Weather:       report,
		WeatherSource: source,
		Plan:          plan,
		ShoppingList:  list,
	}, nil
}

func (a *App) currentWeather(ctx context.Context, opts PlanOptions) (weather.Report, WeatherSource) {
	if opts.Weather != nil {
		return weather.Report{Description: "set manually", Classification: *opts.Weather}, WeatherManual
	}

	report, err := a.weather.Current(ctx)
	if err != nil {
		a.logger.Warn("weather lookup failed, planning for moderate weather", zap.Error(err))
		a.metrics.WeatherFallback()
		return weather.Moderate(), WeatherFallback
	}
	return report, WeatherLive
}

// ImportRecipe clips the recipe at url and stores it.
func (a *App) ImportRecipe(ctx context.Context, url string) (recipe.Recipe, error) {
	if a.clipper == nil {
		return recipe.Recipe{}, fmt.Errorf("recipe import is not configured")
	}

	rec, err := a.clipper.Clip(ctx, url)
	if err == nil {
		rec, err = a.recipes.Save(ctx, rec)
	}
	a.metrics.RecipeImported(err)
	if err != nil {
		return recipe.Recipe{}, fmt.Errorf("failed to import recipe from %s: %w", url, err)
	}

	a.logger.Info("imported recipe", zap.String("id", rec.ID), zap.String("name", rec.Name), zap.String("url", url))
	return rec, nil
}

// SeedSamples stores the sample dinners when no recipes exist yet.
func (a *App) SeedSamples(ctx context.Context) (int, error) {
	n, err := a.recipes.SeedSamples(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to seed sample recipes: %w", err)
	}
	if n > 0 {
		a.logger.Info("seeded sample recipes", zap.Int("count", n))
	}
	return n, nil
}

// ListRecipes returns every stored recipe, newest first.
func (a *App) ListRecipes(ctx context.Context) ([]recipe.Recipe, error) {
	recipes, err := a.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}
