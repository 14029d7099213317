package telegram

import (
	"fmt"
	"strings"

	"dinner-planner/internal/app"
	"dinner-planner/internal/recipe"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// escape quotes user-supplied text for ModeMarkdown messages.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

// formatPlanMarkdownParts renders the plan and the shopping list as two
// separate messages.
func formatPlanMarkdownParts(res app.Result) (string, string) {
	var pb strings.Builder
	fmt.Fprintf(&pb, "📅 *Dinner Plan* (week of %s)\n", res.WeekStart.Format("2 Jan"))
	fmt.Fprintf(&pb, "🌡 %s\n\n", weatherLine(res))

	total := 0
	for _, dp := range res.Plan {
		if dp.Dinner == nil {
			fmt.Fprintf(&pb, "*%s*: _nothing planned_\n", dp.Day)
			continue
		}
		fmt.Fprintf(&pb, "*%s*: %s (%d mins)\n", dp.Day, escape(dp.Dinner.Name), dp.Dinner.TotalTime())
		total += dp.Dinner.TotalTime()
	}
	fmt.Fprintf(&pb, "\n⏱ *Total Cooking:* %d mins", total)

	var sb strings.Builder
	sb.WriteString("🛒 *Shopping List*\n\n")
	if len(res.ShoppingList) == 0 {
		sb.WriteString("_Nothing to buy_\n")
	}
	for _, item := range res.ShoppingList {
		if item.Frequency > 1 {
			fmt.Fprintf(&sb, "• %s ×%d\n", escape(item.Ingredient), item.Frequency)
			continue
		}
		fmt.Fprintf(&sb, "• %s\n", escape(item.Ingredient))
	}

	return pb.String(), sb.String()
}

func weatherLine(res app.Result) string {
	switch res.WeatherSource {
	case app.WeatherLive:
		return fmt.Sprintf("%s (%.0f°C)", res.Weather.String(), res.Weather.Temperature)
	case app.WeatherManual:
		return res.Weather.String() + " (set manually)"
	default:
		return res.Weather.String() + " (weather unavailable)"
	}
}

func formatRecipeList(recipes []recipe.Recipe) string {
	if len(recipes) == 0 {
		return "📖 No recipes yet. Send a recipe URL or use /seed."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📖 *Recipes* (%d)\n\n", len(recipes))
	for i, r := range recipes {
		if i == maxListed {
			fmt.Fprintf(&sb, "_…and %d more_\n", len(recipes)-maxListed)
			break
		}
		fmt.Fprintf(&sb, "• %s _%s, %d mins_\n", escape(r.Name), r.ProteinType, r.TotalTime())
	}
	return sb.String()
}
