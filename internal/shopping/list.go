// Package shopping turns a weekly plan into a deduplicated shopping list.
package shopping

import (
	"strings"

	"dinner-planner/internal/metric"
	"dinner-planner/internal/planner"
)

// Entry is one line of the shopping list. Frequency counts how many times
// the plan's dinners call for the ingredient, not a summed quantity.
type Entry struct {
	Ingredient string `json:"ingredient"`
	Frequency  int    `json:"frequency"`
}

// Normalize is the dedup key for an ingredient line: metric units,
// lower case, trimmed.
func Normalize(ingredient string) string {
	return strings.TrimSpace(strings.ToLower(metric.ConvertIngredient(ingredient)))
}

// BuildList aggregates the ingredients of every planned dinner in day
// order. Entries keep the order in which they were first seen. Every
// ingredient line counts, so a blank line yields an "" entry.
func BuildList(plan planner.Plan) []Entry {
	entries := []Entry{}
	index := make(map[string]int)

	for _, day := range plan {
		if day.Dinner == nil {
			continue
		}
		for _, ingredient := range day.Dinner.Ingredients {
			key := Normalize(ingredient)
			if i, ok := index[key]; ok {
				entries[i].Frequency++
				continue
			}
			index[key] = len(entries)
			entries = append(entries, Entry{Ingredient: key, Frequency: 1})
		}
	}

	return entries
}
