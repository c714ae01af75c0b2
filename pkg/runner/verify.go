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
	"context"
	"time"

	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/config"
	cerror "github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/errors"
	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/primality"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultVerifyChunkSize = 1 << 18

// VerifyOptions describes a cross validation of the two algorithms.
type VerifyOptions struct {
	Limit       uint32
	MemoryQuota uint64
	// Concurrency bounds the chunks checked at the same time.
	Concurrency int
	// ChunkSize is the number of candidates per chunk.
	ChunkSize uint32
}

// NewVerifyOptions builds verify options from the program config.
func NewVerifyOptions(cfg *config.Config) VerifyOptions {
	return VerifyOptions{
		Limit:       cfg.Limit,
		MemoryQuota: cfg.MemoryQuota,
		Concurrency: cfg.Verify.Concurrency,
	}
}

// VerifyResult is the outcome of a cross validation.
type VerifyResult struct {
	Limit uint32
	// Checked is the number of candidates compared.
	Checked uint64
	// Primes is the number of primes in [0, Limit].
	Primes uint64
	// Expected is the reference prime count, valid if HasExpected.
	Expected    uint64
	HasExpected bool
	Duration    time.Duration
}

// Verify checks that trial division and the sieve agree on every candidate
// in [0, opts.Limit], and that the prime count matches the reference count
// when one is known for the limit. The sieve table is built once and only
// read by the workers.
func Verify(ctx context.Context, opts VerifyOptions) (VerifyResult, error) {
	result := VerifyResult{Limit: opts.Limit}
	result.Expected, result.HasExpected = primality.KnownPrimeCount(opts.Limit)

	start := time.Now()
	table, err := primality.BuildSieve(opts.Limit, opts.MemoryQuota)
	if err != nil {
		return result, errors.Trace(err)
	}
	defer table.Release()

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = config.DefaultVerifyConcurrency
	}
	chunkSize := uint64(opts.ChunkSize)
	if chunkSize == 0 {
		chunkSize = defaultVerifyChunkSize
	}

	var checked, primes atomic.Uint64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	limit := uint64(opts.Limit)
	for lo := uint64(0); lo <= limit; lo += chunkSize {
		if gctx.Err() != nil {
			break
		}
		lo, hi := lo, min(lo+chunkSize-1, limit)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var chunkPrimes uint64
			for n := lo; n <= hi; n++ {
				trial := primality.IsPrime(uint32(n))
				sieve := table.IsPrime(uint32(n))
				if trial != sieve {
					return cerror.ErrPrimalityMismatch.GenWithStackByArgs(n, trial, sieve)
				}
				if trial {
					chunkPrimes++
				}
			}
			checked.Add(hi - lo + 1)
			primes.Add(chunkPrimes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		result.Checked = checked.Load()
		return result, errors.Trace(err)
	}
	if err := ctx.Err(); err != nil {
		return result, errors.Trace(err)
	}

	result.Checked = checked.Load()
	result.Primes = primes.Load()
	result.Duration = time.Since(start)
	log.Info("cross validation finished",
		zap.Uint32("limit", opts.Limit),
		zap.Uint64("checked", result.Checked),
		zap.Uint64("primes", result.Primes),
		zap.Int("concurrency", concurrency),
		zap.Duration("duration", result.Duration))

	if result.HasExpected && result.Primes != result.Expected {
		return result, cerror.ErrPrimeCountMismatch.GenWithStackByArgs(
			result.Primes, opts.Limit, result.Expected)
	}
	return result, nil
}
