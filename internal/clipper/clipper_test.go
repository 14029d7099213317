package clipper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dinner-planner/internal/recipe"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		w.Write([]byte(html))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestClip_JSONLD(t *testing.T) {
	ts := serveHTML(t, `
	<html>
		<head>
			<script type="application/ld+json">{not json</script>
			<script type="application/ld+json">
			{"@context": "https://schema.org", "@graph": [
				{"@type": "WebPage", "name": "Page"},
				{"@type": ["Recipe"], "name": "Lemon Salmon",
				 "recipeIngredient": ["2 salmon fillets", "1 cup rice", " 2 tbsp  butter "],
				 "recipeInstructions": [
					{"@type": "HowToStep", "text": "Cook the rice."},
					{"@type": "HowToSection", "itemListElement": [{"@type": "HowToStep", "text": "Pan fry the salmon."}]}
				 ],
				 "prepTime": "PT10M", "cookTime": "PT1H5M",
				 "recipeYield": ["2", "2 servings"],
				 "keywords": "quick, healthy"}
			]}
			</script>
		</head>
		<body><h1>Ignored Title</h1></body>
	</html>`)

	rec, err := NewClipper().Clip(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "Lemon Salmon", rec.Name)
	assert.Equal(t, []string{"2 salmon fillets", "240ml rice", "30ml butter"}, rec.Ingredients)
	assert.Equal(t, "Cook the rice.\nPan fry the salmon.", rec.Instructions)
	assert.Equal(t, 10, rec.PrepTime)
	assert.Equal(t, 65, rec.CookTime)
	assert.Equal(t, 2, rec.Servings)
	assert.Equal(t, recipe.ProteinFish, rec.ProteinType)
	assert.Equal(t, []string{recipe.TagQuick, recipe.TagHealthy}, rec.DietaryTags)
	assert.Equal(t, recipe.MealTypeDinner, rec.MealType)
	assert.Equal(t, recipe.WeatherAny, rec.WeatherPreference)
	assert.Equal(t, ts.URL, rec.Source)
	assert.Empty(t, rec.ID)
	assert.NoError(t, rec.Validate())
}

func TestClip_MarkupFallback(t *testing.T) {
	ts := serveHTML(t, `
	<html>
		<head><meta name="keywords" content="comfort food, family"></head>
		<body>
			<h1> Beef  Stew </h1>
			<div class="servings">Serves 6</div>
			<ul class="ingredients"><li>1 lb beef</li><li>2 carrot</li><li>x</li></ul>
			<ol class="method">
				<li>Step 1 brown the beef in batches.</li>
				<li>2. simmer for two hours.</li>
			</ol>
			<time datetime="PT20M">Prep: 20 mins</time>
			<time datetime="PT2H">Cook time 2 hrs</time>
		</body>
	</html>`)

	rec, err := NewClipper().Clip(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "Beef Stew", rec.Name)
	assert.Equal(t, []string{"454g beef", "150g carrot"}, rec.Ingredients)
	assert.Equal(t, "Brown the beef in batches.\nSimmer for two hours.", rec.Instructions)
	assert.Equal(t, 20, rec.PrepTime)
	assert.Equal(t, 120, rec.CookTime)
	assert.Equal(t, 6, rec.Servings)
	assert.Equal(t, recipe.ProteinMeat, rec.ProteinType)
	assert.Equal(t, []string{recipe.TagComfort, recipe.TagKidFriendly}, rec.DietaryTags)
}

func TestExtract_GenericListItems(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
	<html><body>
		<ul><li>Home</li><li>200g flour</li><li>About us</li><li>2 cups milk</li></ul>
	</body></html>`))
	require.NoError(t, err)

	rec, err := Extract(doc)
	require.NoError(t, err)

	assert.Equal(t, "Imported Recipe", rec.Name)
	assert.Equal(t, []string{"200g flour", "480ml milk"}, rec.Ingredients)
	assert.Equal(t, 4, rec.Servings)
	assert.Equal(t, recipe.ProteinVegetarian, rec.ProteinType)
}

func TestClip_Errors(t *testing.T) {
	t.Run("NoIngredients", func(t *testing.T) {
		ts := serveHTML(t, `<html><body><h1>Nothing here</h1></body></html>`)

		_, err := NewClipper().Clip(context.Background(), ts.URL)
		assert.ErrorContains(t, err, "no ingredients")
	})

	t.Run("BadStatus", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		defer ts.Close()

		_, err := NewClipper().Clip(context.Background(), ts.URL)
		assert.ErrorContains(t, err, "status 404")
	})
}

func TestParseDuration(t *testing.T) {
	tests := map[string]int{
		"PT1H15M": 75,
		"PT45M":   45,
		"P1DT2H":  1560,
		"pt30m":   30,
		"PT90S":   0,
		"":        0,
		"20 mins": 0,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseDuration(in), in)
	}
}
