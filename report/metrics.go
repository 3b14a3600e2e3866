/*
 * metrics.go, part of goDock.
 *
 * Copyright 2026 The goDock authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rmera/godock/pipeline"
)

//Metric names
const (
	MetricPairs     = "godock_pairs_total"
	MetricDuration  = "godock_pair_duration_seconds"
	MetricBestScore = "godock_best_score"
)

//durationBuckets go from 10 s to about 3 h. Docking a pair takes minutes.
var durationBuckets = prometheus.ExponentialBuckets(10, 2, 11)

//NewRegistry returns a registry with the metrics of a run. Every status
//appears in godock_pairs_total, with a zero count if no pair ended with it.
//godock_best_score is only registered if some pair has a score.
func NewRegistry(outcomes []pipeline.Outcome) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	pairs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricPairs,
		Help: "Ligand-target pairs processed, by final status.",
	}, []string{"status"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    MetricDuration,
		Help:    "Time spent processing each ligand-target pair.",
		Buckets: durationBuckets,
	})
	reg.MustRegister(pairs, duration)
	for _, s := range pipeline.Statuses() {
		pairs.WithLabelValues(s.String())
	}
	for _, o := range outcomes {
		pairs.WithLabelValues(o.Status.String()).Inc()
		duration.Observe(o.Duration.Seconds())
	}
	s := Summarize(outcomes)
	if s.Scored > 0 {
		best := prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        MetricBestScore,
			Help:        "Lowest (best) affinity among all pairs, in kcal/mol.",
			ConstLabels: prometheus.Labels{"ligand": s.BestLigand, "target": s.BestTarget},
		})
		best.Set(s.BestScore)
		reg.MustRegister(best)
	}
	return reg
}

//WriteMetrics writes the run metrics to path in the Prometheus text format,
//suitable for the node exporter textfile collector.
func WriteMetrics(path string, outcomes []pipeline.Outcome) error {
	if err := prometheus.WriteToTextfile(path, NewRegistry(outcomes)); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
