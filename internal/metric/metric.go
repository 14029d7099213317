// Package metric rewrites imperial quantities in free-text ingredient
// lines into grams and millilitres.
package metric

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"dinner-planner/internal/recipe"
)

type dimension int

const (
	volume dimension = iota
	weight
)

type unit struct {
	factor float64 // millilitres or grams per unit
	dim    dimension
}

var imperialUnits = map[string]unit{
	"cup": {240, volume}, "cups": {240, volume},
	"tbsp": {15, volume}, "tablespoon": {15, volume}, "tablespoons": {15, volume}, "tbsps": {15, volume}, "tbs": {15, volume},
	"tsp": {5, volume}, "teaspoon": {5, volume}, "teaspoons": {5, volume}, "tsps": {5, volume},
	"fl oz": {30, volume}, "fluid ounce": {30, volume}, "fluid ounces": {30, volume}, "floz": {30, volume},
	"pint": {473, volume}, "pints": {473, volume},
	"quart": {946, volume}, "quarts": {946, volume}, "qt": {946, volume},
	"gallon": {3785, volume}, "gallons": {3785, volume},

	"oz": {28.35, weight}, "ounce": {28.35, weight}, "ounces": {28.35, weight}, "ozs": {28.35, weight},
	"lb": {453.6, weight}, "lbs": {453.6, weight}, "pound": {453.6, weight}, "pounds": {453.6, weight}, "lbm": {453.6, weight},
	"stick": {113, weight}, "sticks": {113, weight},
	"packet": {7, weight}, "packets": {7, weight}, "envelope": {7, weight}, "envelopes": {7, weight},
}

// amountPattern matches, most specific first: mixed number, range,
// fraction or decimal.
const amountPattern = `(\d+\s+\d+/\d+|\d+(?:[.,]\d+)?\s*-\s*\d+(?:[.,]\d+)?|\d+(?:[.,]\d+)?(?:/\d+)?)`

// ingredientDefault converts a bare count of a whole ingredient into grams.
// More specific names come first so "2 large egg" never matches "egg".
type ingredientDefault struct {
	grams   float64
	noun    string
	pattern *regexp.Regexp
}

var ingredientDefaults = newIngredientDefaults([]struct {
	name  string
	grams float64
	noun  string
}{
	{"large egg", 60, "egg"}, {"medium egg", 50, "egg"}, {"small egg", 40, "egg"}, {"egg", 50, "egg"},
	{"large onion", 200, "onion"}, {"medium onion", 150, "onion"}, {"small onion", 100, "onion"}, {"onion", 150, "onion"},
	{"large carrot", 100, "carrot"}, {"medium carrot", 75, "carrot"}, {"small carrot", 50, "carrot"}, {"carrot", 75, "carrot"},
	{"large potato", 300, "potato"}, {"medium potato", 200, "potato"}, {"small potato", 100, "potato"}, {"potato", 200, "potato"},
	{"large apple", 200, "apple"}, {"medium apple", 150, "apple"}, {"small apple", 100, "apple"}, {"apple", 150, "apple"},
	{"clove garlic", 3, "garlic"}, {"garlic clove", 3, "garlic"}, {"clove of garlic", 3, "garlic"},
})

// Words in a default's name that never take a plural.
var invariantWords = map[string]bool{"large": true, "medium": true, "small": true, "of": true}

func newIngredientDefaults(entries []struct {
	name  string
	grams float64
	noun  string
}) []ingredientDefault {
	defaults := make([]ingredientDefault, 0, len(entries))
	for _, e := range entries {
		words := strings.Fields(e.name)
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
			if !invariantWords[w] {
				words[i] += `(?:es|s)?`
			}
		}
		defaults = append(defaults, ingredientDefault{
			grams:   e.grams,
			noun:    e.noun,
			pattern: regexp.MustCompile(`(?i)\b` + amountPattern + `\s+` + strings.Join(words, `\s+`) + `\b`),
		})
	}
	return defaults
}

var measurementPattern = regexp.MustCompile(`(?i)` + amountPattern + `\s*` +
	`(cups|cup|tbsps|tbsp|tablespoons|tablespoon|tbs|tsps|tsp|teaspoons|teaspoon|` +
	`fl\.?\s*oz|fluid\s*ounces|fluid\s*ounce|floz|pints|pint|quarts|quart|qt|gallons|gallon|` +
	`ozs|oz|ounces|ounce|lbs|lbm|lb|pounds|pound|sticks|stick|packets|packet|envelopes|envelope)\b`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// ConvertIngredient rewrites every "<amount> <imperial unit>" in an
// ingredient line as a metric quantity. Text it does not recognise is
// returned unchanged apart from whitespace cleanup.
func ConvertIngredient(ingredient string) string {
	converted := strings.TrimSpace(ingredient)

	for _, d := range ingredientDefaults {
		converted = d.pattern.ReplaceAllStringFunc(converted, func(match string) string {
			count, ok := parseAmount(d.pattern.FindStringSubmatch(match)[1])
			if !ok {
				return match
			}
			return formatMetric(count*d.grams, weight) + " " + d.noun
		})
	}

	converted = measurementPattern.ReplaceAllStringFunc(converted, func(match string) string {
		groups := measurementPattern.FindStringSubmatch(match)
		u, ok := imperialUnits[canonicalUnit(groups[2])]
		if !ok {
			return match
		}
		amount, ok := parseAmount(groups[1])
		if !ok {
			return match
		}
		return formatMetric(amount*u.factor, u.dim)
	})

	return strings.TrimSpace(whitespacePattern.ReplaceAllString(converted, " "))
}

// ConvertRecipe returns a copy of rec with every ingredient converted.
func ConvertRecipe(rec recipe.Recipe) recipe.Recipe {
	if len(rec.Ingredients) == 0 {
		return rec
	}
	ingredients := make([]string, len(rec.Ingredients))
	for i, ing := range rec.Ingredients {
		ingredients[i] = ConvertIngredient(ing)
	}
	rec.Ingredients = ingredients
	return rec
}

func canonicalUnit(raw string) string {
	u := strings.ToLower(raw)
	u = strings.ReplaceAll(u, ".", "")
	return whitespacePattern.ReplaceAllString(u, " ")
}

// parseAmount evaluates "2", "1.5", "1,5", "1/2", "1 1/2" and ranges
// such as "2-3", which resolve to their midpoint.
func parseAmount(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)

	if lo, hi, found := strings.Cut(raw, "-"); found {
		min, ok1 := parseDecimal(lo)
		max, ok2 := parseDecimal(hi)
		if !ok1 || !ok2 {
			return 0, false
		}
		return (min + max) / 2, true
	}

	if strings.Contains(raw, "/") {
		whole := 0.0
		fraction := raw
		if fields := strings.Fields(raw); len(fields) == 2 {
			w, ok := parseDecimal(fields[0])
			if !ok {
				return 0, false
			}
			whole, fraction = w, fields[1]
		}
		num, den, _ := strings.Cut(fraction, "/")
		n, ok1 := parseDecimal(num)
		d, ok2 := parseDecimal(den)
		if !ok1 || !ok2 || d == 0 {
			return 0, false
		}
		return whole + n/d, true
	}

	return parseDecimal(raw)
}

func parseDecimal(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// formatMetric switches to L/kg once the amount rounds to 1000 of the base
// unit (one decimal), rounds amounts under 50 to the nearest 5 and larger
// ones to a whole unit.
func formatMetric(amount float64, dim dimension) string {
	small, large := "ml", "L"
	if dim == weight {
		small, large = "g", "kg"
	}

	whole := math.Round(amount)
	if whole >= 1000 {
		return strconv.FormatFloat(math.Round(whole/1000*10)/10, 'f', -1, 64) + large
	}

	if amount < 50 {
		whole = math.Round(amount/5) * 5
	}
	return strconv.FormatFloat(whole, 'f', -1, 64) + small
}
