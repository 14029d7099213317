package app

import (
	"fmt"
	"strings"
)

// FormatText renders a planning result for the terminal.
func FormatText(res Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "=== DINNER PLAN: WEEK OF %s ===\n", res.WeekStart.Format("Mon 2 Jan 2006"))
	sb.WriteString("Weather: " + describeWeather(res) + "\n\n")

	for _, day := range res.Plan {
		if day.Dinner == nil {
			fmt.Fprintf(&sb, "%-10s: (no dinner planned)\n", day.Day)
			continue
		}
		fmt.Fprintf(&sb, "%-10s: %s (%d mins)\n", day.Day, day.Dinner.Name, day.Dinner.TotalTime())
	}

	sb.WriteString("\n=== SHOPPING LIST ===\n")
	if len(res.ShoppingList) == 0 {
		sb.WriteString("(nothing to buy)\n")
	}
	for _, item := range res.ShoppingList {
		if item.Frequency > 1 {
			fmt.Fprintf(&sb, "- %s (x%d)\n", item.Ingredient, item.Frequency)
			continue
		}
		fmt.Fprintf(&sb, "- %s\n", item.Ingredient)
	}

	return sb.String()
}

func describeWeather(res Result) string {
	switch res.WeatherSource {
	case WeatherLive:
		desc := fmt.Sprintf("%s, %.1f°C", res.Weather.String(), res.Weather.Temperature)
		if res.Weather.Description != "" {
			desc += ", " + res.Weather.Description
		}
		return desc
	case WeatherManual:
		return res.Weather.String() + " (set manually)"
	default:
		return res.Weather.String() + " (live weather unavailable)"
	}
}
