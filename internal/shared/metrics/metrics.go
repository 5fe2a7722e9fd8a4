package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()
	factory  = promauto.With(registry)

	workoutPlansGenerated = factory.NewCounter(prometheus.CounterOpts{
		Name: "workout_plans_generated_total",
		Help: "Total workout plans generated",
	})
	grocerySuggestionsGenerated = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "grocery_suggestions_generated_total",
		Help: "Total grocery suggestion responses generated",
	}, []string{"source"})
	aiFallbackTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "ai_fallback_total",
		Help: "Total AI calls answered by the fallback value",
	}, []string{"feature", "reason"})
	aiRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ai_request_duration_ms",
		Help:    "AI provider request duration in milliseconds",
		Buckets: []float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000},
	}, []string{"provider", "outcome"})
	httpRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"method", "route", "status"})
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// IncWorkoutPlans increments the generated workout plan counter.
func IncWorkoutPlans() {
	workoutPlansGenerated.Inc()
}

// IncGrocerySuggestions increments the grocery counter for the given source
// ("health" or "catalog").
func IncGrocerySuggestions(source string) {
	grocerySuggestionsGenerated.WithLabelValues(source).Inc()
}

// IncAIFallback records an AI call that was answered by its fallback.
func IncAIFallback(feature, reason string) {
	aiFallbackTotal.WithLabelValues(feature, reason).Inc()
}

// ObserveAIRequest records the duration of one AI provider call.
func ObserveAIRequest(provider, outcome string, d time.Duration) {
	ms := float64(d) / float64(time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	aiRequestDuration.WithLabelValues(provider, outcome).Observe(ms)
}

// ObserveHTTPRequest counts a completed request. route is the registered gin
// path, not the raw URL, to keep label cardinality bounded.
func ObserveHTTPRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}
