// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package configurator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/neosolar/genbundler/pkg/catalog"
	"github.com/neosolar/genbundler/pkg/generator"
)

// Run status label values.
const (
	statusSuccess   = "success"
	statusNoBundles = "no_bundles"
	statusError     = "error"
)

// Registry holds the run metrics. It is separate from the default registry
// so the textfile dump carries run metrics only.
var Registry = prometheus.NewRegistry()

var (
	factory = promauto.With(Registry)

	runTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genbundler_run_total",
			Help: "Total number of generator runs",
		},
		[]string{"status"}, // success, no_bundles or error
	)

	runDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "genbundler_run_duration_seconds",
			Help:    "Time taken by a complete generator run",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
	)

	stageDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "genbundler_stage_duration_seconds",
			Help:    "Time taken by individual run stages",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"stage"}, // load, generate, write, package
	)

	catalogComponents = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "genbundler_catalog_components",
			Help: "Number of components per category in the last loaded catalog",
		},
		[]string{"category"},
	)

	bundlesGenerated = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "genbundler_bundles",
			Help: "Number of bundles generated by the last run",
		},
	)

	lineItemsWritten = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "genbundler_line_items",
			Help: "Number of line items written by the last run",
		},
	)

	unmatchedInverters = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "genbundler_unmatched_inverters",
			Help: "Inverters without a controller of the same power in the last run",
		},
	)

	rejectedPanelsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genbundler_rejected_panel_combinations_total",
			Help: "Total number of panel combinations excluded by the exact-fit rule",
		},
		[]string{"reason"}, // oversized, not_divisible, invalid_power
	)
)

func recordCatalog(counts map[catalog.Category]int) {
	for _, c := range append(catalog.Categories(), catalog.CategoryUnknown) {
		catalogComponents.WithLabelValues(string(c)).Set(float64(counts[c]))
	}
}

func recordGeneration(res *generator.Result, items int) {
	bundlesGenerated.Set(float64(len(res.Bundles)))
	lineItemsWritten.Set(float64(items))
	unmatchedInverters.Set(float64(res.Stats.UnmatchedInverters))
	for reason, n := range res.Stats.Rejected {
		rejectedPanelsTotal.WithLabelValues(string(reason)).Add(float64(n))
	}
}
