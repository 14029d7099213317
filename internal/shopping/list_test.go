package shopping

import (
	"testing"

	"dinner-planner/internal/planner"
	"dinner-planner/internal/recipe"

	"github.com/stretchr/testify/assert"
)

func planOf(dinners ...*recipe.Recipe) planner.Plan {
	plan := make(planner.Plan, len(planner.Days))
	for i, name := range planner.Days {
		plan[i].Day = name
		if i < len(dinners) {
			plan[i].Dinner = dinners[i]
		}
	}
	return plan
}

func TestBuildList(t *testing.T) {
	pasta := &recipe.Recipe{Name: "Pasta", Ingredients: []string{"2 cups Flour", "1 Onion", "Salt"}}
	soup := &recipe.Recipe{Name: "Soup", Ingredients: []string{"1 onion", " salt ", "1 lb carrots"}}

	t.Run("DeduplicatesInFirstSeenOrder", func(t *testing.T) {
		list := BuildList(planOf(pasta, nil, soup))

		assert.Equal(t, []Entry{
			{Ingredient: "480ml flour", Frequency: 1},
			{Ingredient: "150g onion", Frequency: 2},
			{Ingredient: "salt", Frequency: 2},
			{Ingredient: "454g carrots", Frequency: 1},
		}, list)
	})

	t.Run("RepeatedDinnerCountsEachDay", func(t *testing.T) {
		list := BuildList(planOf(pasta, pasta, pasta))

		for _, e := range list {
			assert.Equal(t, 3, e.Frequency, e.Ingredient)
		}
	})

	t.Run("DifferentQuantitiesStaySeparate", func(t *testing.T) {
		a := &recipe.Recipe{Ingredients: []string{"1 cup rice"}}
		b := &recipe.Recipe{Ingredients: []string{"2 cups rice"}}

		list := BuildList(planOf(a, b))
		assert.Equal(t, []Entry{
			{Ingredient: "240ml rice", Frequency: 1},
			{Ingredient: "480ml rice", Frequency: 1},
		}, list)
	})

	t.Run("BlankLinesAreKept", func(t *testing.T) {
		a := &recipe.Recipe{Ingredients: []string{"  ", "salt"}}
		b := &recipe.Recipe{Ingredients: []string{""}}

		list := BuildList(planOf(a, b))
		assert.Equal(t, []Entry{
			{Ingredient: "", Frequency: 2},
			{Ingredient: "salt", Frequency: 1},
		}, list)
	})

	t.Run("EmptyPlan", func(t *testing.T) {
		assert.Empty(t, BuildList(planOf()))
		assert.Empty(t, BuildList(nil))
	})
}

func TestBuildList_FrequencyMatchesDinners(t *testing.T) {
	samples := recipe.Samples()
	dinners := []*recipe.Recipe{&samples[0], &samples[1], &samples[0], &samples[2], &samples[1], &samples[3], &samples[4]}
	plan := planOf(dinners...)

	for _, e := range BuildList(plan) {
		want := 0
		for _, d := range dinners {
			for _, ing := range d.Ingredients {
				if Normalize(ing) == e.Ingredient {
					want++
				}
			}
		}
		assert.Equal(t, want, e.Frequency, e.Ingredient)
	}
}
