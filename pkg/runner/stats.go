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

package runner

import (
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// benchStats records run durations in microseconds.
type benchStats struct {
	algorithm string
	hist      *hdrhistogram.Histogram
}

func newBenchStats(algorithm string) *benchStats {
	return &benchStats{
		algorithm: algorithm,
		hist:      hdrhistogram.New(1, int64((time.Hour).Microseconds()), 3),
	}
}

func (s *benchStats) record(d time.Duration) {
	micros := d.Microseconds()
	if micros <= 0 {
		micros = 1
	}
	if err := s.hist.RecordValue(micros); err != nil {
		_ = s.hist.RecordValue(s.hist.HighestTrackableValue())
	}
}

func (s *benchStats) snapshot() BenchResult {
	result := BenchResult{
		Iterations: int(s.hist.TotalCount()),
	}
	if s.hist.TotalCount() > 0 {
		result.Min = microsToDuration(s.hist.Min())
		result.Mean = microsToDuration(int64(s.hist.Mean()))
		result.P50 = microsToDuration(s.hist.ValueAtQuantile(50))
		result.P95 = microsToDuration(s.hist.ValueAtQuantile(95))
		result.P99 = microsToDuration(s.hist.ValueAtQuantile(99))
		result.Max = microsToDuration(s.hist.Max())
	}
	return result
}

func microsToDuration(value int64) time.Duration {
	if value <= 0 {
		return time.Microsecond
	}
	return time.Duration(value) * time.Microsecond
}

// FormatDuration renders d with a unit suited to its magnitude.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	if d < time.Microsecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1e3)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1e3)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
