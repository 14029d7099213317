package clipper

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dinner-planner/internal/metric"
	"dinner-planner/internal/recipe"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultName     = "Imported Recipe"
	defaultServings = 4
	userAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// Clipper fetches recipe pages and turns them into recipes.
type Clipper struct {
	httpClient *http.Client
}

// NewClipper creates a new Clipper instance.
func NewClipper() *Clipper {
	return &Clipper{httpClient: &http.Client{Timeout: 15 * time.Second}}
}

// Clip fetches url and extracts a dinner recipe from it. Ingredients are
// converted to metric. The returned recipe has no ID.
func (c *Clipper) Clip(ctx context.Context, url string) (recipe.Recipe, error) {
	doc, err := c.fetch(ctx, url)
	if err != nil {
		return recipe.Recipe{}, fmt.Errorf("failed to fetch content: %w", err)
	}

	rec, err := Extract(doc)
	if err != nil {
		return recipe.Recipe{}, err
	}
	rec.Source = url
	return rec, nil
}

func (c *Clipper) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// Extract reads a recipe from a parsed page. Structured data is used when
// the page has it, otherwise common recipe markup is scraped.
func Extract(doc *goquery.Document) (recipe.Recipe, error) {
	page, ok := fromJSONLD(doc)
	if !ok {
		page = fromMarkup(doc)
	}

	if page.name == "" {
		page.name = defaultName
	}
	if len(page.ingredients) == 0 {
		return recipe.Recipe{}, fmt.Errorf("no ingredients found on page")
	}
	if page.servings <= 0 {
		page.servings = defaultServings
	}

	rec := recipe.Recipe{
		Name:              page.name,
		Ingredients:       page.ingredients,
		Instructions:      strings.Join(page.instructions, "\n"),
		PrepTime:          page.prepTime,
		CookTime:          page.cookTime,
		Servings:          page.servings,
		MealType:          recipe.MealTypeDinner,
		ProteinType:       inferProtein(page),
		DietaryTags:       inferTags(page),
		WeatherPreference: recipe.WeatherAny,
	}
	return metric.ConvertRecipe(rec), nil
}

// scraped is the raw recipe data found on a page.
type scraped struct {
	name         string
	ingredients  []string
	instructions []string
	prepTime     int
	cookTime     int
	servings     int
	keywords     string
}

var (
	ingredientSelectors = []string{
		`[itemprop="recipeIngredient"]`,
		`section[data-testid="ingredients-section"] li`,
		`[data-testid="ingredients"] li`,
		`.recipe-ingredients__list li`,
		`.ingredients-section__list li`,
		`.ingredients li`,
		`li[class*="ingredient"]`,
	}
	instructionSelectors = []string{
		`[itemprop="recipeInstructions"] li`,
		`section[data-testid="method-section"] li`,
		`[data-testid="method"] li`,
		`[data-testid="instructions"] li`,
		`.recipe-method__list li`,
		`.method li`,
		`.instructions li`,
		`.directions li`,
		`li[class*="method"]`,
	}
	titleSelectors   = []string{`h1`, `.recipe-title`, `[itemprop="name"]`, `[data-testid="recipe-title"]`}
	servingSelectors = []string{`[itemprop="recipeYield"]`, `[data-testid*="serves"]`, `[data-testid*="serving"]`, `.serves`, `.servings`}

	quantityHint = regexp.MustCompile(`(?i)^\d|\d\s*(g|kg|ml|l)\b|\b(cups?|tbsp|tsp|oz|grams?|litres?)\b`)
	firstNumber  = regexp.MustCompile(`\d+`)
	stepPrefix   = regexp.MustCompile(`(?i)^(method\s*)?(step\s*\d+|\d+\s*of\s*\d+|\d+\s*[.)]?)\s*`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Shorter list items are usually headings or stray markup.
const (
	minIngredientLen = 3
	minStepLen       = 6
)

func fromMarkup(doc *goquery.Document) scraped {
	var page scraped

	for _, sel := range titleSelectors {
		if name := cleanText(doc.Find(sel).First().Text()); name != "" {
			page.name = name
			break
		}
	}

	for _, sel := range ingredientSelectors {
		page.ingredients = collect(doc.Find(sel), minIngredientLen, func(s string) string {
			first, _, _ := strings.Cut(s, "\n")
			return first
		})
		if len(page.ingredients) > 0 {
			break
		}
	}
	if len(page.ingredients) == 0 {
		page.ingredients = collect(doc.Find("li"), minIngredientLen, func(s string) string {
			if !quantityHint.MatchString(s) {
				return ""
			}
			return s
		})
	}

	for _, sel := range instructionSelectors {
		page.instructions = collect(doc.Find(sel), minStepLen, cleanStep)
		if len(page.instructions) > 0 {
			break
		}
	}

	doc.Find("time").Each(func(_ int, s *goquery.Selection) {
		text := strings.ToLower(s.Text())
		minutes := parseDuration(s.AttrOr("datetime", ""))
		if minutes == 0 {
			minutes = atoiFirst(text)
		}
		switch {
		case strings.Contains(text, "prep") && page.prepTime == 0:
			page.prepTime = minutes
		case strings.Contains(text, "cook") && page.cookTime == 0:
			page.cookTime = minutes
		}
	})

	for _, sel := range servingSelectors {
		if n := atoiFirst(doc.Find(sel).First().Text()); n > 0 {
			page.servings = n
			break
		}
	}

	doc.Find(`meta[name="keywords"]`).Each(func(_ int, s *goquery.Selection) {
		page.keywords += " " + s.AttrOr("content", "")
	})

	return page
}

// collect returns the cleaned, non-trivial text of each element. clean
// may return "" to drop an element.
func collect(sel *goquery.Selection, minLen int, clean func(string) string) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		text := cleanText(clean(strings.TrimSpace(s.Text())))
		if len(text) >= minLen {
			out = append(out, text)
		}
	})
	return out
}

func cleanText(s string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}

func cleanStep(s string) string {
	s = stepPrefix.ReplaceAllString(strings.TrimSpace(s), "")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func atoiFirst(s string) int {
	n, err := strconv.Atoi(firstNumber.FindString(s))
	if err != nil {
		return 0
	}
	return n
}

var isoDuration = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// parseDuration turns an ISO-8601 duration such as "PT1H15M" into whole
// minutes. Anything else is zero.
func parseDuration(s string) int {
	m := isoDuration.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return 0
	}
	days, _ := strconv.Atoi(m[1])
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	return days*24*60 + hours*60 + minutes
}

var (
	fishWords = regexp.MustCompile(`\b(fish|salmon|tuna|shrimps?|prawns?|cod|haddock|mackerel|seafood)\b`)
	meatWords = regexp.MustCompile(`\b(chicken|beef|pork|lamb|bacon|sausages?|turkey|mince|ham|chorizo)\b`)
)

func inferProtein(page scraped) recipe.ProteinType {
	keywords := strings.ToLower(page.keywords)
	ingredients := strings.ToLower(strings.Join(page.ingredients, " "))

	switch {
	case strings.Contains(keywords, "vegan"):
		return recipe.ProteinVegan
	case strings.Contains(keywords, "vegetarian"):
		return recipe.ProteinVegetarian
	case containsAny(keywords, "seafood", "fish") || fishWords.MatchString(ingredients):
		return recipe.ProteinFish
	case meatWords.MatchString(ingredients):
		return recipe.ProteinMeat
	default:
		return recipe.ProteinVegetarian
	}
}

func inferTags(page scraped) []string {
	keywords := strings.ToLower(page.keywords)

	var tags []string
	if strings.Contains(keywords, "vegetarian") {
		tags = append(tags, recipe.TagVegetarian)
	}
	if containsAny(keywords, "quick", "easy") {
		tags = append(tags, recipe.TagQuick)
	}
	if strings.Contains(keywords, "healthy") {
		tags = append(tags, recipe.TagHealthy)
	}
	if strings.Contains(keywords, "comfort") {
		tags = append(tags, recipe.TagComfort)
	}
	if containsAny(keywords, "kid", "family") {
		tags = append(tags, recipe.TagKidFriendly)
	}
	return tags
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
