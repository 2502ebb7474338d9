package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Observe(t *testing.T) {
	m := New()
	m.ObserveAnalysis("daily", "Buy")
	m.ObserveAnalysis("daily", "Buy")
	m.ObserveError("insufficient_data")
	m.ObserveFetch("yahoo", time.Now(), errors.New("boom"))
	m.ObserveNotification(nil)

	if got := testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("daily", "Buy")); got != 2 {
		t.Errorf("analyses = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.AnalysisErrors.WithLabelValues("insufficient_data")); got != 1 {
		t.Errorf("errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Notifications.WithLabelValues("sent")); got != 1 {
		t.Errorf("notifications = %v, want 1", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `stockanalyzer_fetch_duration_seconds_count{outcome="error",source="yahoo"} 1`) {
		t.Errorf("fetch histogram missing from exposition:\n%s", body)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveAnalysis("daily", "Hold")
	m.ObserveError("x")
	m.ObserveFetch("yahoo", time.Now(), nil)
	m.ObserveNews(3)
	m.ObserveNotification(nil)
}
