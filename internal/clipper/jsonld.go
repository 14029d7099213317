package clipper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fromJSONLD looks for a schema.org Recipe in the page's JSON-LD blocks.
// The node may be top level, inside an array or inside an @graph.
func fromJSONLD(doc *goquery.Document) (scraped, bool) {
	var found map[string]any
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}
		found = findRecipeNode(data)
		return found == nil
	})
	if found == nil {
		return scraped{}, false
	}

	page := scraped{
		name:         cleanText(stringValue(found["name"])),
		ingredients:  cleanAll(stringList(found["recipeIngredient"])),
		instructions: instructionList(found["recipeInstructions"]),
		prepTime:     parseDuration(stringValue(found["prepTime"])),
		cookTime:     parseDuration(stringValue(found["cookTime"])),
		servings:     yieldValue(found["recipeYield"]),
		keywords: strings.Join(append(
			stringList(found["keywords"]),
			stringList(found["recipeCategory"])...,
		), " "),
	}
	if page.prepTime == 0 && page.cookTime == 0 {
		page.cookTime = parseDuration(stringValue(found["totalTime"]))
	}
	if len(page.ingredients) == 0 {
		return scraped{}, false
	}
	return page, true
}

func findRecipeNode(v any) map[string]any {
	switch node := v.(type) {
	case []any:
		for _, item := range node {
			if found := findRecipeNode(item); found != nil {
				return found
			}
		}
	case map[string]any:
		if isRecipeType(node["@type"]) {
			return node
		}
		if graph, ok := node["@graph"]; ok {
			return findRecipeNode(graph)
		}
	}
	return nil
}

func isRecipeType(v any) bool {
	for _, t := range stringList(v) {
		if t == "Recipe" {
			return true
		}
	}
	return false
}

func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return fmt.Sprint(val)
	default:
		return ""
	}
}

// stringList accepts a single string or an array of strings.
func stringList(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := stringValue(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func cleanAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := cleanText(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// instructionList flattens plain strings, HowToStep and HowToSection nodes.
func instructionList(v any) []string {
	var steps []string
	switch val := v.(type) {
	case string:
		for _, line := range strings.Split(val, "\n") {
			if s := cleanText(line); s != "" {
				steps = append(steps, s)
			}
		}
	case []any:
		for _, item := range val {
			steps = append(steps, instructionList(item)...)
		}
	case map[string]any:
		if elements, ok := val["itemListElement"]; ok {
			return instructionList(elements)
		}
		if s := cleanText(stringValue(val["text"])); s != "" {
			steps = append(steps, s)
		}
	}
	return steps
}

func yieldValue(v any) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		return atoiFirst(val)
	case []any:
		for _, item := range val {
			if n := yieldValue(item); n > 0 {
				return n
			}
		}
	}
	return 0
}
