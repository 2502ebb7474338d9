package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the analyzer. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	AnalysesTotal  *prometheus.CounterVec   // labels: timeframe, action
	AnalysisErrors *prometheus.CounterVec   // labels: kind
	FetchDuration  *prometheus.HistogramVec // labels: source, outcome
	NewsItems      prometheus.Histogram
	Notifications  *prometheus.CounterVec // labels: outcome
}

// New creates the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockanalyzer_analyses_total",
			Help: "Completed analyses by timeframe and recommended action",
		}, []string{"timeframe", "action"}),
		AnalysisErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockanalyzer_analysis_errors_total",
			Help: "Failed analyses by error kind",
		}, []string{"kind"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stockanalyzer_fetch_duration_seconds",
			Help:    "Upstream fetch latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"source", "outcome"}),
		NewsItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stockanalyzer_news_items",
			Help:    "News items returned per lookup",
			Buckets: []float64{0, 1, 2, 4, 8, 12, 16},
		}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockanalyzer_notifications_total",
			Help: "Watchlist notifications by outcome",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(
		m.AnalysesTotal,
		m.AnalysisErrors,
		m.FetchDuration,
		m.NewsItems,
		m.Notifications,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveAnalysis(timeframe, action string) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues(timeframe, action).Inc()
}

func (m *Metrics) ObserveError(kind string) {
	if m == nil {
		return
	}
	m.AnalysisErrors.WithLabelValues(kind).Inc()
}

// ObserveFetch records how long a fetch from source took since start.
func (m *Metrics) ObserveFetch(source string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.FetchDuration.WithLabelValues(source, outcome).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveNews(n int) {
	if m == nil {
		return
	}
	m.NewsItems.Observe(float64(n))
}

func (m *Metrics) ObserveNotification(err error) {
	if m == nil {
		return
	}
	outcome := "sent"
	if err != nil {
		outcome = "failed"
	}
	m.Notifications.WithLabelValues(outcome).Inc()
}
