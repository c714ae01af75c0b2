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
	"io"
	"time"

	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/config"
	cerror "github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/errors"
	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/primality"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// BenchOptions describes repeated timed runs.
type BenchOptions struct {
	Limit       uint32
	Algorithms  []primality.Algorithm
	Iterations  int
	BufferSize  int
	MemoryQuota uint64
}

// NewBenchOptions builds bench options from the program config.
func NewBenchOptions(cfg *config.Config) BenchOptions {
	return BenchOptions{
		Limit:       cfg.Limit,
		Algorithms:  cfg.Bench.PrimalityAlgorithms(),
		Iterations:  cfg.Bench.Iterations,
		BufferSize:  cfg.BufferSize,
		MemoryQuota: cfg.MemoryQuota,
	}
}

// BenchResult summarizes the timed runs of one algorithm.
type BenchResult struct {
	Algorithm  primality.Algorithm
	Limit      uint32
	Iterations int
	Count      uint64
	Min        time.Duration
	Mean       time.Duration
	P50        time.Duration
	P95        time.Duration
	P99        time.Duration
	Max        time.Duration
}

// LatencySummary renders p50/p95/p99/max.
func (r BenchResult) LatencySummary() string {
	return FormatDuration(r.P50) + "/" + FormatDuration(r.P95) + "/" + FormatDuration(r.P99) + "/" + FormatDuration(r.Max)
}

// Bench runs every algorithm opts.Iterations times with the listing
// discarded and reports the duration distribution. All algorithms must
// agree on the prime count.
func Bench(opts BenchOptions) ([]BenchResult, error) {
	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = config.DefaultBenchIterations
	}

	results := make([]BenchResult, 0, len(opts.Algorithms))
	for _, algorithm := range opts.Algorithms {
		stats := newBenchStats(string(algorithm))
		var count uint64
		for i := 0; i < iterations; i++ {
			res, err := Run(Options{
				Limit:       opts.Limit,
				Algorithm:   algorithm,
				BufferSize:  opts.BufferSize,
				MemoryQuota: opts.MemoryQuota,
			}, io.Discard)
			if err != nil {
				return results, errors.Trace(err)
			}
			stats.record(res.Duration)
			count = res.Count
		}

		result := stats.snapshot()
		result.Algorithm = algorithm
		result.Limit = opts.Limit
		result.Count = count
		log.Info("bench finished",
			zap.String("algorithm", string(algorithm)),
			zap.Int("iterations", result.Iterations),
			zap.Uint64("count", count),
			zap.String("mean", FormatDuration(result.Mean)),
			zap.String("p50/p95/p99/max", result.LatencySummary()))

		if len(results) > 0 && results[0].Count != count {
			return append(results, result), cerror.ErrPrimeCountMismatch.GenWithStackByArgs(
				count, opts.Limit, results[0].Count)
		}
		results = append(results, result)
	}
	return results, nil
}
