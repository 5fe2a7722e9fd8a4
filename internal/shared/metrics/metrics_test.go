package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(workoutPlansGenerated)
	IncWorkoutPlans()
	if got := testutil.ToFloat64(workoutPlansGenerated); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}

	fallbackBefore := testutil.ToFloat64(aiFallbackTotal.WithLabelValues("foods.analyze", "breaker_open"))
	IncAIFallback("foods.analyze", "breaker_open")
	if got := testutil.ToFloat64(aiFallbackTotal.WithLabelValues("foods.analyze", "breaker_open")); got != fallbackBefore+1 {
		t.Fatalf("expected fallback counter %v, got %v", fallbackBefore+1, got)
	}
}

func TestHandlerRendersPrometheusText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncGrocerySuggestions("health")
	ObserveAIRequest("openai", "ok", 420*time.Millisecond)
	ObserveHTTPRequest(http.MethodGet, "", http.StatusNotFound)

	router := gin.New()
	router.GET("/metrics", Handler())

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{
		`grocery_suggestions_generated_total{source="health"}`,
		`ai_request_duration_ms_bucket{outcome="ok",provider="openai",le="500"}`,
		`http_requests_total{method="GET",route="unmatched",status="404"}`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}
