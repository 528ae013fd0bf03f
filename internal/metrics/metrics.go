// SPDX-License-Identifier: MIT

// Package metrics records solver activity as Prometheus metrics.
//
// A command run is short-lived, so nothing is served over HTTP: metrics live
// in a private registry and are written once to a node-exporter textfile.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/atsp/little"
	"github.com/katalvlaran/atsp/tsp"
)

// Solve outcome labels.
const (
	StatusOptimal    = "optimal"
	StatusLimit      = "limit"
	StatusInfeasible = "infeasible"
	StatusError      = "error"
)

// Metrics is the metric set of one command run.
type Metrics struct {
	reg *prometheus.Registry

	SolvesTotal     *prometheus.CounterVec
	SolveDuration   prometheus.Histogram
	InstanceSize    prometheus.Histogram
	NodesExpanded   prometheus.Counter
	NodesPruned     prometheus.Counter
	NodesInfeasible prometheus.Counter
	Incumbents      prometheus.Counter
	BestCost        *prometheus.GaugeVec
	RootBound       *prometheus.GaugeVec
}

// New registers the metric set under namespace in a fresh registry.
func New(namespace string) *Metrics {
	var (
		reg     = prometheus.NewRegistry()
		factory = promauto.With(reg)
	)

	return &Metrics{
		reg: reg,

		SolvesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solves_total",
				Help:      "Solved instances by outcome",
			},
			[]string{"status"},
		),
		SolveDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solve_duration_seconds",
				Help:      "Wall-clock time per instance",
				Buckets:   []float64{.001, .01, .05, .1, .5, 1, 5, 10, 30, 60, 300},
			},
		),
		InstanceSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "instance_cities",
				Help:      "Number of cities per instance",
				Buckets:   []float64{5, 10, 20, 30, 50, 75, 100, 200},
			},
		),
		NodesExpanded: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "nodes_expanded_total",
				Help:      "Search nodes branched",
			},
		),
		NodesPruned: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "nodes_pruned_total",
				Help:      "Search nodes discarded by bound",
			},
		),
		NodesInfeasible: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "nodes_infeasible_total",
				Help:      "Search nodes discarded because a row or column emptied",
			},
		),
		Incumbents: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "incumbents_total",
				Help:      "Strictly improving tours found",
			},
		),
		BestCost: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "best_cost",
				Help:      "Best tour cost found per instance",
			},
			[]string{"instance"},
		),
		RootBound: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "root_bound",
				Help:      "Lower bound of the reduced root per instance",
			},
			[]string{"instance"},
		),
	}
}

// Registry exposes the private registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Hooks returns search hooks that update the live counters for instance
// and then call next.
func (m *Metrics) Hooks(instance string, next tsp.Hooks) tsp.Hooks {
	best := m.BestCost.WithLabelValues(instance)

	return tsp.Hooks{
		OnExpand: func(n *little.Node, b little.Branch) {
			m.NodesExpanded.Inc()
			if next.OnExpand != nil {
				next.OnExpand(n, b)
			}
		},
		OnIncumbent: func(cost int64, tour []int) {
			m.Incumbents.Inc()
			best.Set(float64(cost))
			if next.OnIncumbent != nil {
				next.OnIncumbent(cost, tour)
			}
		},
		OnPrune: func(bound int64) {
			m.NodesPruned.Inc()
			if next.OnPrune != nil {
				next.OnPrune(bound)
			}
		},
	}
}

// ObserveSolve records one finished solve.
func (m *Metrics) ObserveSolve(instance string, cities int, res tsp.TSResult, err error, took time.Duration) {
	m.SolvesTotal.WithLabelValues(Status(err)).Inc()
	m.SolveDuration.Observe(took.Seconds())
	m.InstanceSize.Observe(float64(cities))
	m.NodesInfeasible.Add(float64(res.Stats.Infeasible))
	m.RootBound.WithLabelValues(instance).Set(float64(res.Stats.RootBound))
}

// WriteTextfile writes every metric in the textfile-collector format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}

// Status classifies a SolveATSP error.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusOptimal
	case errors.Is(err, tsp.ErrTimeLimit), errors.Is(err, tsp.ErrNodeLimit),
		errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatusLimit
	case errors.Is(err, tsp.ErrIncompleteGraph):
		return StatusInfeasible
	default:
		return StatusError
	}
}
