package app

import (
	"testing"
	"time"

	"dinner-planner/internal/planner"
	"dinner-planner/internal/recipe"
	"dinner-planner/internal/shopping"
	"dinner-planner/internal/weather"

	"github.com/stretchr/testify/assert"
)

func TestFormatText(t *testing.T) {
	stirFry := &recipe.Recipe{Name: "Chicken Stir Fry", PrepTime: 10, CookTime: 15}
	plan := make(planner.Plan, len(planner.Days))
	for i, day := range planner.Days {
		plan[i].Day = day
	}
	plan[0].Dinner = stirFry

	res := Result{
		WeekStart:     time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		Weather:       weather.Report{Temperature: 8.5, Description: "light rain", Classification: weather.Classification{IsCold: true}},
		WeatherSource: WeatherLive,
		Plan:          plan,
		ShoppingList: []shopping.Entry{
			{Ingredient: "480ml flour", Frequency: 2},
			{Ingredient: "salt", Frequency: 1},
		},
	}

	out := FormatText(res)

	assert.Contains(t, out, "WEEK OF Mon 19 Oct 2026")
	assert.Contains(t, out, "Weather: cold, 8.5°C, light rain")
	assert.Contains(t, out, "Monday    : Chicken Stir Fry (25 mins)")
	assert.Contains(t, out, "Tuesday   : (no dinner planned)")
	assert.Contains(t, out, "- 480ml flour (x2)\n")
	assert.Contains(t, out, "- salt\n")

	t.Run("FallbackWeather", func(t *testing.T) {
		res.Weather = weather.Moderate()
		res.WeatherSource = WeatherFallback
		res.ShoppingList = nil

		out := FormatText(res)
		assert.Contains(t, out, "Weather: moderate (live weather unavailable)")
		assert.Contains(t, out, "(nothing to buy)")
	})
}
