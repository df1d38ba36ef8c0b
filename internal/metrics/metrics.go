// Package metrics exposes Prometheus counters for the recommendation
// pipeline so an external observability layer can watch rejection and gap
// rates without parsing logs.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PipelineCollector counts the notable events of recommendation runs.
type PipelineCollector struct {
	registry             *prometheus.Registry
	recommendationsTotal *prometheus.CounterVec
	lookupsTotal         prometheus.Counter
	unresolvedTotal      prometheus.Counter
	rejectionsTotal      *prometheus.CounterVec
	gapsTotal            prometheus.Counter
}

// NewPipelineCollector constructs a collector with its own registry.
func NewPipelineCollector() (*PipelineCollector, error) {
	registry := prometheus.NewRegistry()

	recommendationsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "policypilot",
		Subsystem: "pipeline",
		Name:      "recommendations_total",
		Help:      "Number of recommendation runs, by risk profile.",
	}, []string{"profile"})

	lookupsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "policypilot",
		Subsystem: "research",
		Name:      "lookups_total",
		Help:      "Number of fund identifiers sent to research.",
	})

	unresolvedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "policypilot",
		Subsystem: "research",
		Name:      "unresolved_total",
		Help:      "Number of identifiers with no discoverable metrics.",
	})

	rejectionsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "policypilot",
		Subsystem: "pipeline",
		Name:      "rejections_total",
		Help:      "Number of funds rejected by eligibility rules, by rule.",
	}, []string{"rule"})

	gapsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "policypilot",
		Subsystem: "pipeline",
		Name:      "gaps_total",
		Help:      "Number of slots left unfilled across all runs.",
	})

	for _, c := range []prometheus.Collector{
		recommendationsTotal, lookupsTotal, unresolvedTotal, rejectionsTotal, gapsTotal,
	} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	return &PipelineCollector{
		registry:             registry,
		recommendationsTotal: recommendationsTotal,
		lookupsTotal:         lookupsTotal,
		unresolvedTotal:      unresolvedTotal,
		rejectionsTotal:      rejectionsTotal,
		gapsTotal:            gapsTotal,
	}, nil
}

// Handler returns an HTTP handler exposing the collector's registry.
func (c *PipelineCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveRun records the aggregate counts of one recommendation run.
// Safe on a nil collector so callers can skip wiring metrics in tests.
func (c *PipelineCollector) ObserveRun(profile string, lookups, unresolved int, rejections map[string]int, gaps int) {
	if c == nil {
		return
	}
	c.recommendationsTotal.WithLabelValues(profile).Inc()
	c.lookupsTotal.Add(float64(lookups))
	c.unresolvedTotal.Add(float64(unresolved))
	for rule, n := range rejections {
		c.rejectionsTotal.WithLabelValues(rule).Add(float64(n))
	}
	c.gapsTotal.Add(float64(gaps))
}
