package app

import (
	"fmt"

	"dinner-planner/internal/clipper"
	"dinner-planner/internal/config"
	"dinner-planner/internal/database"
	"dinner-planner/internal/metrics"
	"dinner-planner/internal/planner"
	"dinner-planner/internal/recipe"
	"dinner-planner/internal/weather"

	"go.uber.org/zap"
)

// Setup opens the database and wires the App from cfg. The caller owns
// the returned database and must close it. A nil rng seeds from the clock.
func Setup(cfg *config.Config, recorder *metrics.Recorder, rng planner.RandomSource, logger *zap.Logger) (*App, *database.DB, error) {
	db, err := database.NewDB(cfg.DatabasePath, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := NewApp(
		recipe.NewRepository(db.SQL),
		weatherProvider(cfg, logger),
		planner.NewPlanner(rng),
		clipper.NewClipper(),
		recorder,
		logger,
	)
	return application, db, nil
}

func weatherProvider(cfg *config.Config, logger *zap.Logger) weather.Provider {
	if cfg.WeatherAPIKey == "" {
		logger.Info("WEATHER_API_KEY not set, planning for moderate weather")
		return weather.Static(weather.Moderate())
	}
	return weather.NewClient(cfg.WeatherAPIURL, cfg.WeatherAPIKey, cfg.WeatherCity, weather.Thresholds{
		HotAbove:  cfg.WeatherHotAbove,
		ColdBelow: cfg.WeatherColdBelow,
	})
}
