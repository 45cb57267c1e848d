package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cinecatalog"

// Metrics groups the collectors exported on /metrics
type Metrics struct {
	registry *prometheus.Registry

	MoviesLoaded   prometheus.Gauge
	RowWarnings    *prometheus.CounterVec
	BrowseRequests *prometheus.CounterVec
	BrowseResults  prometheus.Histogram
}

// New registers the collectors on a fresh registry, so tests can build as
// many instances as they need.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		MoviesLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "movies_loaded",
			Help:      "Number of movies held in the catalog.",
		}),
		RowWarnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "row_warnings_total",
			Help:      "Dataset values coerced to null or rows skipped while loading.",
		}, []string{"column"}),
		BrowseRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "browse_requests_total",
			Help:      "Browse pipeline runs by mode.",
		}, []string{"mode"}),
		BrowseResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "browse_results",
			Help:      "Number of movies matching the filters of a browse request.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}

	m.registry.MustRegister(
		m.MoviesLoaded,
		m.RowWarnings,
		m.BrowseRequests,
		m.BrowseResults,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveBrowse records one pipeline run
func (m *Metrics) ObserveBrowse(random bool, matched int) {
	if m == nil {
		return
	}
	mode := "filter"
	if random {
		mode = "random"
	}
	m.BrowseRequests.WithLabelValues(mode).Inc()
	m.BrowseResults.Observe(float64(matched))
}

// ObserveLoad records the size of a freshly loaded catalog and its
// per-column warning counts
func (m *Metrics) ObserveLoad(loaded int, warningsByColumn map[string]int) {
	if m == nil {
		return
	}
	m.MoviesLoaded.Set(float64(loaded))
	for column, n := range warningsByColumn {
		m.RowWarnings.WithLabelValues(column).Add(float64(n))
	}
}
