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

package primality

import (
	cerror "github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/errors"
	"github.com/pingcap/failpoint"
)

// Table is a primality table built by the Sieve of Eratosthenes. The flag at
// index i is true iff i is prime, for every i in [0, Limit()].
//
// A Table is exclusively owned by the caller of BuildSieve and must be
// released with Release once it is no longer needed. It is safe for
// concurrent reads once built.
type Table struct {
	limit uint32
	flags []bool
}

// TableSize returns the number of bytes a table for limit occupies.
func TableSize(limit uint32) uint64 {
	return uint64(limit) + 1
}

// BuildSieve allocates and fills a primality table for [0, limit].
// memoryQuota caps the table size in bytes, 0 means unlimited. When the
// table does not fit the quota no table is returned.
func BuildSieve(limit uint32, memoryQuota uint64) (*Table, error) {
	size := TableSize(limit)
	if memoryQuota > 0 && size > memoryQuota {
		return nil, cerror.ErrSieveAllocate.GenWithStackByArgs(limit, size, memoryQuota)
	}
	failpoint.Inject("SieveAllocateFailed", func() {
		failpoint.Return(nil, cerror.ErrSieveAllocate.GenWithStackByArgs(limit, size, memoryQuota))
	})

	flags := make([]bool, size)
	for i := range flags {
		flags[i] = true
	}
	flags[0] = false
	if limit > 0 {
		flags[1] = false
	}

	n := uint64(limit)
	for i := uint64(4); i <= n; i += 2 {
		flags[i] = false
	}

	// Any composite c <= limit has a factor <= sqrt(c), so stopping the
	// outer loop at floor(sqrt(limit)) never misses one.
	sqrtLimit := isqrtFloor(limit)
	for i := uint64(3); i <= sqrtLimit; i += 2 {
		if !flags[i] {
			continue
		}
		// even multiples are already cleared
		step := i * 2
		for j := i * i; j <= n; j += step {
			flags[j] = false
		}
	}

	return &Table{limit: limit, flags: flags}, nil
}

// IsPrime reports whether n is prime. n must not exceed Limit().
func (t *Table) IsPrime(n uint32) bool {
	return t.flags[n]
}

// Limit returns the largest candidate covered by the table.
func (t *Table) Limit() uint32 {
	return t.limit
}

// Size returns the table size in bytes, 0 after Release.
func (t *Table) Size() uint64 {
	return uint64(len(t.flags))
}

// Count returns the number of primes in the table.
func (t *Table) Count() uint64 {
	var count uint64
	for _, prime := range t.flags {
		if prime {
			count++
		}
	}
	return count
}

// Release drops the flags. Reading the table afterwards panics.
func (t *Table) Release() {
	t.flags = nil
}
