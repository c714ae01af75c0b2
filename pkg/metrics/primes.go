// Copyright 2026 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	cerror "github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// PrimesFoundCounter counts the primes emitted by runs.
	PrimesFoundCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "primes",
			Subsystem: "run",
			Name:      "primes_found_total",
			Help:      "The number of primes found",
		}, []string{"algorithm"})

	// RunDurationHistogram records the elapsed time of each run.
	RunDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "primes",
			Subsystem: "run",
			Name:      "duration_seconds",
			Help:      "Bucketed histogram of prime enumeration duration",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2.0, 16), // 1ms ~ 32s
		}, []string{"algorithm"})

	// RunErrorCounter counts failed runs.
	RunErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "primes",
			Subsystem: "run",
			Name:      "errors_total",
			Help:      "The number of failed prime enumeration runs",
		}, []string{"algorithm"})

	// SieveTableBytesGauge is the size of the sieve table held by the
	// current run, 0 when no table is held.
	SieveTableBytesGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "primes",
			Subsystem: "sieve",
			Name:      "table_bytes",
			Help:      "The size of the sieve table in bytes",
		})
)

// InitMetrics registers all metrics in this file.
func InitMetrics(registry *prometheus.Registry) {
	registry.MustRegister(PrimesFoundCounter)
	registry.MustRegister(RunDurationHistogram)
	registry.MustRegister(RunErrorCounter)
	registry.MustRegister(SieveTableBytesGauge)
}

// WriteTextfile writes the gathered metrics to path in the Prometheus text
// format, for the node exporter textfile collector.
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return cerror.WrapError(cerror.ErrWriteMetrics, err, path)
	}
	return nil
}
