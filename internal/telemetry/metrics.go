// SPDX-License-Identifier: MIT

package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/tspmeta/tsp"
)

const metricsNamespace = "tspmeta"

// Collector records one solver run into a private Prometheus registry.
// Rounds are generations for the GA and iterations for the colony.
type Collector struct {
	registry *prometheus.Registry

	// RoundsTotal counts completed rounds. Labels: algo.
	RoundsTotal *prometheus.CounterVec

	// BestDistance is the best distance seen so far. Labels: algo.
	BestDistance *prometheus.GaugeVec

	// MeanDistance is the mean distance of the latest round. Labels: algo.
	MeanDistance *prometheus.GaugeVec

	// SpreadDistance is the GA population standard deviation or the colony
	// median ant distance of the latest round. Labels: algo, stat.
	SpreadDistance *prometheus.GaugeVec

	// RunSeconds is the wall time of finished runs. Labels: algo.
	RunSeconds *prometheus.GaugeVec

	// ResultDistance is the distance of the returned tour. Labels: algo.
	ResultDistance *prometheus.GaugeVec
}

// NewCollector registers the run metrics, tagging them with runID.
func NewCollector(runID string) *Collector {
	var (
		reg         = prometheus.NewRegistry()
		constLabels = prometheus.Labels{"run_id": runID}
	)
	c := &Collector{
		registry: reg,
		RoundsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace, Name: "rounds_total", ConstLabels: constLabels,
			Help: "Completed generations or iterations.",
		}, []string{"algo"}),
		BestDistance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace, Name: "best_distance", ConstLabels: constLabels,
			Help: "Best tour distance found so far.",
		}, []string{"algo"}),
		MeanDistance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace, Name: "mean_distance", ConstLabels: constLabels,
			Help: "Mean tour distance of the latest round.",
		}, []string{"algo"}),
		SpreadDistance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace, Name: "round_distance", ConstLabels: constLabels,
			Help: "Per-round distance statistic (stddev for GA, median for ACO).",
		}, []string{"algo", "stat"}),
		RunSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace, Name: "run_seconds", ConstLabels: constLabels,
			Help: "Wall time of the run.",
		}, []string{"algo"}),
		ResultDistance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace, Name: "result_distance", ConstLabels: constLabels,
			Help: "Distance of the returned tour.",
		}, []string{"algo"}),
	}
	reg.MustRegister(c.RoundsTotal, c.BestDistance, c.MeanDistance, c.SpreadDistance, c.RunSeconds, c.ResultDistance)

	return c
}

// Registry exposes the private registry, e.g. for promhttp.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Attach chains the collector into opts' hooks.
func (c *Collector) Attach(opts *tsp.Options) {
	opts.OnGeneration = chainGeneration(opts.OnGeneration, c.OnGeneration)
	opts.OnIteration = chainIteration(opts.OnIteration, c.OnIteration)
}

// OnGeneration records one GA generation.
func (c *Collector) OnGeneration(r tsp.GenerationReport) {
	algo := tsp.Genetic.String()
	c.RoundsTotal.WithLabelValues(algo).Inc()
	c.BestDistance.WithLabelValues(algo).Set(r.BestCost)
	c.MeanDistance.WithLabelValues(algo).Set(r.MeanCost)
	c.SpreadDistance.WithLabelValues(algo, "stddev").Set(r.StdDevCost)
}

// OnIteration records one colony iteration.
func (c *Collector) OnIteration(r tsp.IterationReport) {
	algo := tsp.AntColony.String()
	c.RoundsTotal.WithLabelValues(algo).Inc()
	c.BestDistance.WithLabelValues(algo).Set(r.BestCost)
	c.MeanDistance.WithLabelValues(algo).Set(r.MeanCost)
	c.SpreadDistance.WithLabelValues(algo, "median").Set(r.MedianCost)
}

// Result records the returned tour and run duration.
func (c *Collector) Result(algo tsp.Algo, res tsp.TSResult, elapsed time.Duration) {
	c.ResultDistance.WithLabelValues(algo.String()).Set(res.Cost)
	c.RunSeconds.WithLabelValues(algo.String()).Set(elapsed.Seconds())
}

// WriteText writes every gathered family in the Prometheus text format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
