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
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// NewStatistics creates a statistics for runs of algorithm.
func NewStatistics(algorithm string) *Statistics {
	return &Statistics{
		algorithm:           algorithm,
		metricPrimesFound:   PrimesFoundCounter.WithLabelValues(algorithm),
		metricRunDuration:   RunDurationHistogram.WithLabelValues(algorithm),
		metricRunErrorCount: RunErrorCounter.WithLabelValues(algorithm),
	}
}

// Statistics maintains the metrics of the runs of one algorithm.
type Statistics struct {
	algorithm string

	// metricPrimesFound records the primes found by successful runs.
	metricPrimesFound prometheus.Counter
	// metricRunDuration records each run duration.
	metricRunDuration prometheus.Observer
	// metricRunErrorCount records the failed runs.
	metricRunErrorCount prometheus.Counter
}

// RecordRun stats a run executor which returns (primeCount, error).
func (s *Statistics) RecordRun(executor func() (uint64, error)) error {
	start := time.Now()
	count, err := executor()
	if err != nil {
		s.metricRunErrorCount.Inc()
		return err
	}
	s.metricRunDuration.Observe(time.Since(start).Seconds())
	s.metricPrimesFound.Add(float64(count))
	return nil
}

// RecordTableSize records the bytes held by the sieve table.
func (s *Statistics) RecordTableSize(size uint64) {
	SieveTableBytesGauge.Set(float64(size))
}

// Close removes the label values of the algorithm.
func (s *Statistics) Close() {
	PrimesFoundCounter.DeleteLabelValues(s.algorithm)
	RunDurationHistogram.DeleteLabelValues(s.algorithm)
	RunErrorCounter.DeleteLabelValues(s.algorithm)
}
