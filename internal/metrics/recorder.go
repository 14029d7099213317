package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder collects planning metrics on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	plansGenerated     *prometheus.CounterVec
	emptyDays          prometheus.Counter
	recipePoolSize     prometheus.Gauge
	generationDuration prometheus.Histogram
	weatherFallbacks   prometheus.Counter
	recipesImported    *prometheus.CounterVec
}

// NewRecorder creates a Recorder with Go runtime and process collectors
// registered alongside the planner metrics.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		plansGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_plans_generated_total",
			Help: "Weekly plans generated, by weather classification.",
		}, []string{"weather"}),
		emptyDays: factory.NewCounter(prometheus.CounterOpts{
			Name: "planner_empty_days_total",
			Help: "Planned days left without a dinner.",
		}),
		recipePoolSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "planner_recipe_pool_size",
			Help: "Recipes available to the most recent plan.",
		}),
		generationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "planner_generation_duration_seconds",
			Help:    "Time to generate a plan and shopping list.",
			Buckets: prometheus.DefBuckets,
		}),
		weatherFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "planner_weather_fallbacks_total",
			Help: "Plans that used moderate weather because the lookup failed.",
		}),
		recipesImported: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_recipes_imported_total",
			Help: "Recipe imports from URLs, by result.",
		}, []string{"result"}),
	}
}

// ObservePlan records one generated plan.
func (r *Recorder) ObservePlan(weather string, poolSize, emptyDays int, took time.Duration) {
	r.plansGenerated.WithLabelValues(weather).Inc()
	r.recipePoolSize.Set(float64(poolSize))
	r.emptyDays.Add(float64(emptyDays))
	r.generationDuration.Observe(took.Seconds())
}

// WeatherFallback records a failed weather lookup.
func (r *Recorder) WeatherFallback() {
	r.weatherFallbacks.Inc()
}

// RecipeImported records an import attempt.
func (r *Recorder) RecipeImported(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	r.recipesImported.WithLabelValues(result).Inc()
}

// Registry exposes the underlying registry for tests and custom collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
