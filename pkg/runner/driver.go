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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/config"
	cerror "github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/errors"
	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/metrics"
	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/primality"
	"github.com/google/uuid"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// Options describes one enumeration run.
type Options struct {
	Limit     uint32
	Algorithm primality.Algorithm
	// BufferSize is the output buffer size, config.DefaultBufferSize if 0.
	BufferSize int
	// MemoryQuota caps the sieve table, 0 means unlimited.
	MemoryQuota uint64
}

// NewOptions builds run options from the program config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Limit:       cfg.Limit,
		Algorithm:   cfg.PrimalityAlgorithm(),
		BufferSize:  cfg.BufferSize,
		MemoryQuota: cfg.MemoryQuota,
	}
}

// Result is the outcome of a run.
type Result struct {
	RunID     string
	Algorithm primality.Algorithm
	Limit     uint32
	// Count is the number of primes written.
	Count uint64
	// Largest is the largest prime written, 0 if none.
	Largest uint32
	// Duration covers source preparation, enumeration and flushing the
	// prime listing.
	Duration time.Duration
}

// Run enumerates the primes in [0, opts.Limit] with the configured
// algorithm and writes the listing to out:
//
//	a banner line
//	one line per prime in ascending order
//	a blank line
//	Quantidade de números primos encontrados: <count>
//	Tempo gasto: <seconds> segundos
//
// Any write error aborts the run with ErrOutputWrite.
func Run(opts Options, out io.Writer) (Result, error) {
	source, err := primality.NewSource(opts.Algorithm, opts.MemoryQuota)
	if err != nil {
		return Result{}, errors.Trace(err)
	}
	return run(source, opts, out)
}

func run(source primality.Source, opts Options, out io.Writer) (result Result, err error) {
	result = Result{
		RunID:     uuid.NewString(),
		Algorithm: source.Algorithm(),
		Limit:     opts.Limit,
	}
	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = config.DefaultBufferSize
	}
	w := bufio.NewWriterSize(out, bufferSize)

	stats := metrics.NewStatistics(string(result.Algorithm))
	defer func() {
		source.Close()
		stats.RecordTableSize(0)
	}()

	log.Info("prime enumeration started",
		zap.String("runID", result.RunID),
		zap.String("algorithm", string(result.Algorithm)),
		zap.Uint32("limit", opts.Limit))

	err = stats.RecordRun(func() (uint64, error) {
		if _, err := fmt.Fprintf(w, "Contando números primos de 1 a %d%s...\n",
			opts.Limit, bannerSuffix(result.Algorithm)); err != nil {
			return 0, cerror.WrapError(cerror.ErrOutputWrite, err)
		}

		start := time.Now()
		if err := source.Prepare(opts.Limit); err != nil {
			return 0, errors.Trace(err)
		}
		stats.RecordTableSize(source.MemoryUsage())
		log.Debug("primality source prepared",
			zap.String("runID", result.RunID),
			zap.Uint64("memoryUsage", source.MemoryUsage()),
			zap.Duration("elapsed", time.Since(start)))

		count, largest, err := emitPrimes(source, opts.Limit, w)
		if err != nil {
			return 0, err
		}
		if err := w.Flush(); err != nil {
			return 0, cerror.WrapError(cerror.ErrOutputWrite, err)
		}
		result.Duration = time.Since(start)
		result.Count = count
		result.Largest = largest

		fmt.Fprintf(w, "\nQuantidade de números primos encontrados: %d\n", count)
		fmt.Fprintf(w, "Tempo gasto: %.3f segundos\n", result.Duration.Seconds())
		if err := w.Flush(); err != nil {
			return 0, cerror.WrapError(cerror.ErrOutputWrite, err)
		}
		return count, nil
	})
	if err != nil {
		log.Warn("prime enumeration failed",
			zap.String("runID", result.RunID),
			zap.String("algorithm", string(result.Algorithm)),
			zap.Error(err))
		return result, err
	}

	log.Info("prime enumeration finished",
		zap.String("runID", result.RunID),
		zap.String("algorithm", string(result.Algorithm)),
		zap.Uint64("count", result.Count),
		zap.Uint32("largest", result.Largest),
		zap.Duration("duration", result.Duration))
	return result, nil
}

// emitPrimes writes every prime in [2, limit] to w, one per line in
// ascending order. 2 is handled apart so only odd candidates are tested.
func emitPrimes(source primality.Source, limit uint32, w io.Writer) (count uint64, largest uint32, err error) {
	line := make([]byte, 0, 16)
	emit := func(p uint32) error {
		line = strconv.AppendUint(line[:0], uint64(p), 10)
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return cerror.WrapError(cerror.ErrOutputWrite, err)
		}
		count++
		largest = p
		return nil
	}

	if limit >= 2 {
		if err := emit(2); err != nil {
			return count, largest, err
		}
	}
	// 64-bit counter so that limit == MaxUint32 terminates.
	for n := uint64(3); n <= uint64(limit); n += 2 {
		if !source.IsPrime(uint32(n)) {
			continue
		}
		if err := emit(uint32(n)); err != nil {
			return count, largest, err
		}
	}
	return count, largest, nil
}

func bannerSuffix(algorithm primality.Algorithm) string {
	if algorithm == primality.AlgorithmSieve {
		return " (usando Crivo de Eratóstenes)"
	}
	return ""
}
