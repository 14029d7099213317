package app

import (
	"context"
	"path/filepath"
	"testing"

	"dinner-planner/internal/config"
	"dinner-planner/internal/metrics"
	"dinner-planner/internal/planner"
	"dinner-planner/internal/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetup(t *testing.T) {
	cfg := &config.Config{DatabasePath: filepath.Join(t.TempDir(), "planner.db")}

	a, db, err := Setup(cfg, metrics.NewRecorder(), planner.NewSource(1), zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	n, err := a.SeedSamples(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	res, err := a.GenerateMealPlan(ctx, PlanOptions{})
	require.NoError(t, err)
	assert.Len(t, res.Plan.Dinners(), 7)
	assert.Equal(t, weather.Moderate(), res.Weather)
	assert.NotEmpty(t, res.ShoppingList)

	for _, d := range res.Plan.Dinners() {
		assert.NotEmpty(t, d.ID, "dinners come from the database")
	}
}

func TestWeatherProvider(t *testing.T) {
	_, isStatic := weatherProvider(&config.Config{}, zap.NewNop()).(weather.Static)
	assert.True(t, isStatic)

	_, isClient := weatherProvider(&config.Config{WeatherAPIKey: "key"}, zap.NewNop()).(*weather.Client)
	assert.True(t, isClient)
}
