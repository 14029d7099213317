package planner

import (
	"time"

	"dinner-planner/internal/recipe"
)

// Days is the fixed order of every plan, independent of today's weekday.
var Days = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayPlan represents the plan for a single day. Dinner is nil when no
// recipe could be assigned, otherwise it points into the pool passed to
// BuildPlan.
type DayPlan struct {
	Day    string         `json:"day"`
	Dinner *recipe.Recipe `json:"dinner,omitempty"`
}

// Plan is always exactly seven days, Monday through Sunday.
type Plan []DayPlan

// Dinners returns the assigned recipes in day order.
func (p Plan) Dinners() []*recipe.Recipe {
	dinners := make([]*recipe.Recipe, 0, len(p))
	for _, day := range p {
		if day.Dinner != nil {
			dinners = append(dinners, day.Dinner)
		}
	}
	return dinners
}

// ProteinBalance tallies the protein types selected so far.
type ProteinBalance struct {
	Meat       int
	Fish       int
	Vegetarian int
}

// Record counts rec's protein, treating anything other than meat or fish
// as vegetarian.
func (b *ProteinBalance) Record(rec *recipe.Recipe) {
	switch rec.ProteinType {
	case recipe.ProteinMeat:
		b.Meat++
	case recipe.ProteinFish:
		b.Fish++
	default:
		b.Vegetarian++
	}
}

// Total is the number of recipes recorded.
func (b ProteinBalance) Total() int {
	return b.Meat + b.Fish + b.Vegetarian
}

func (b ProteinBalance) ratio(count int) float64 {
	return float64(count) / float64(max(1, b.Total()))
}

// VegetarianRatio is the share of vegetarian picks so far.
func (b ProteinBalance) VegetarianRatio() float64 { return b.ratio(b.Vegetarian) }

// FishRatio is the share of fish picks so far.
func (b ProteinBalance) FishRatio() float64 { return b.ratio(b.Fish) }

// MeatRatio is the share of meat picks so far.
func (b ProteinBalance) MeatRatio() float64 { return b.ratio(b.Meat) }

// GetNextMonday returns midnight of the Monday after t. A Monday maps to
// the following week.
func GetNextMonday(t time.Time) time.Time {
	daysUntil := (int(time.Monday) - int(t.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	next := t.AddDate(0, 0, daysUntil)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, next.Location())
}
