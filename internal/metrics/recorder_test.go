package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	r.ObservePlan("hot", 5, 0, 3*time.Millisecond)
	r.ObservePlan("cold", 0, 7, time.Millisecond)
	r.WeatherFallback()
	r.RecipeImported(nil)
	r.RecipeImported(errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(r.plansGenerated.WithLabelValues("hot")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.plansGenerated.WithLabelValues("cold")))
	assert.Equal(t, 7.0, testutil.ToFloat64(r.emptyDays))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.recipePoolSize))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.weatherFallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.recipesImported.WithLabelValues("error")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.generationDuration))

	err := testutil.CollectAndCompare(r.emptyDays, strings.NewReader(`
# HELP planner_empty_days_total Planned days left without a dinner.
# TYPE planner_empty_days_total counter
planner_empty_days_total 7
`))
	assert.NoError(t, err)
}

func TestRecorderHandler(t *testing.T) {
	r := NewRecorder()
	r.ObservePlan("moderate", 3, 1, time.Millisecond)

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `planner_plans_generated_total{weather="moderate"} 1`)
	assert.Contains(t, string(body), "planner_recipe_pool_size 3")
	assert.Contains(t, string(body), "go_goroutines")
}
