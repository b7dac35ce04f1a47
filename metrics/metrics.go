// SPDX-License-Identifier: MIT

// Package metrics records per-run Prometheus metrics for ternclique.
//
// A run is a batch job, not a server, so metrics live in a private registry
// and are written once at the end in the node_exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stage names used as the "stage" label of the duration histogram.
const (
	StageRead  = "read"
	StageGraph = "graph"
	StageCover = "cover"
	StageMerge = "merge"
	StageWrite = "write"
)

// Recorder owns a registry and the collectors of one run.
type Recorder struct {
	reg *prometheus.Registry

	vectors    prometheus.Counter
	malformed  prometheus.Counter
	cliques    prometheus.Counter
	edges      prometheus.Gauge
	shortfall  prometheus.Gauge
	cliqueSize prometheus.Histogram
	stage      *prometheus.HistogramVec
}

// NewRecorder registers all collectors on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		vectors: f.NewCounter(prometheus.CounterOpts{
			Name: "ternclique_vectors_total",
			Help: "Vectors loaded from the input",
		}),
		malformed: f.NewCounter(prometheus.CounterOpts{
			Name: "ternclique_malformed_records_total",
			Help: "Input records skipped as malformed",
		}),
		cliques: f.NewCounter(prometheus.CounterOpts{
			Name: "ternclique_cliques_total",
			Help: "Cliques extracted (dictionary entries)",
		}),
		edges: f.NewGauge(prometheus.GaugeOpts{
			Name: "ternclique_graph_edges",
			Help: "Edges of the compatibility graph before pruning",
		}),
		shortfall: f.NewGauge(prometheus.GaugeOpts{
			Name: "ternclique_shortfall",
			Help: "Requested entries that could not be produced",
		}),
		cliqueSize: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ternclique_clique_size",
			Help:    "Members per extracted clique",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1 to 2048
		}),
		stage: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ternclique_stage_duration_seconds",
			Help:    "Wall time per pipeline stage",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"stage"}),
	}
}

// Registry exposes the underlying registry, e.g. for tests or a push gateway.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Loaded records the outcome of reading the input.
func (r *Recorder) Loaded(vectors, skipped int) {
	r.vectors.Add(float64(vectors))
	r.malformed.Add(float64(skipped))
}

// Graph records the edge count of the fresh compatibility graph.
func (r *Recorder) Graph(edges int) { r.edges.Set(float64(edges)) }

// Clique records one extracted clique of the given size.
func (r *Recorder) Clique(size int) {
	r.cliques.Inc()
	r.cliqueSize.Observe(float64(size))
}

// Shortfall records how many requested entries were missing.
func (r *Recorder) Shortfall(missing int) { r.shortfall.Set(float64(missing)) }

// Time returns a func that observes the elapsed time of stage when called.
//
//	defer rec.Time(metrics.StageGraph)()
func (r *Recorder) Time(stage string) func() {
	start := time.Now()
	return func() {
		r.stage.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	}
}

// WriteTextfile writes every metric to path atomically, in the format read
// by node_exporter's textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
