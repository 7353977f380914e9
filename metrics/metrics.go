// Package metrics exports maze runs to Prometheus.
//
// A Collector counts graph mutations and labelling changes through the
// core.GraphObserver returned by Observer, and records run durations by
// phase ("generate", "solve") and outcome ("ok", "canceled", "error").
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/labyrinth/core"
)

// Namespace prefixes every metric name.
const Namespace = "labyrinth"

// Run outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeCanceled = "canceled"
	OutcomeError    = "error"
)

// Collector holds the maze metrics.
type Collector struct {
	EdgesAdded    prometheus.Counter
	EdgesRemoved  prometheus.Counter
	VertexChanges *prometheus.CounterVec
	RunDuration   *prometheus.HistogramVec
	GridVertices  prometheus.Gauge
}

// New registers the maze metrics on reg. A nil reg registers on
// prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		EdgesAdded: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "edges_added_total",
				Help:      "Walls removed from mazes",
			},
		),

		EdgesRemoved: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "edges_removed_total",
				Help:      "Walls put back into mazes",
			},
		),

		VertexChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "vertex_changes_total",
				Help:      "Vertex label writes",
			},
			[]string{"phase"},
		),

		RunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of generation and solving runs",
				Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10, 30, 60, 300},
			},
			[]string{"phase", "outcome"},
		),

		GridVertices: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "grid_vertices",
				Help:      "Number of cells of the current maze",
			},
		),
	}
}

// Observer returns a GraphObserver that counts events under phase. It never
// fails, so it can sit anywhere in an observer chain.
func (c *Collector) Observer(phase string) core.GraphObserver {
	return &phaseObserver{c: c, vertex: c.VertexChanges.WithLabelValues(phase)}
}

// ObserveRun records the duration since start under phase and the outcome
// derived from err.
func (c *Collector) ObserveRun(phase string, start time.Time, err error) {
	c.RunDuration.WithLabelValues(phase, Outcome(err)).Observe(time.Since(start).Seconds())
}

// Outcome classifies a run error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, core.ErrCanceled):
		return OutcomeCanceled
	default:
		return OutcomeError
	}
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

type phaseObserver struct {
	c      *Collector
	vertex prometheus.Counter
}

func (o *phaseObserver) OnEdgeAdded(int, int) error {
	o.c.EdgesAdded.Inc()
	return nil
}

func (o *phaseObserver) OnEdgeRemoved(int, int) error {
	o.c.EdgesRemoved.Inc()
	return nil
}

func (o *phaseObserver) OnVertexChanged(int) error {
	o.vertex.Inc()
	return nil
}
