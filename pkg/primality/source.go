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
	"strings"

	cerror "github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/errors"
)

// Algorithm names a primality source.
type Algorithm string

const (
	// AlgorithmTrialDivision tests every candidate by 6k±1 trial division.
	AlgorithmTrialDivision Algorithm = "trial-division"
	// AlgorithmSieve precomputes a table with the Sieve of Eratosthenes.
	AlgorithmSieve Algorithm = "sieve"
)

// Algorithms lists the supported algorithms in a stable order.
var Algorithms = []Algorithm{AlgorithmTrialDivision, AlgorithmSieve}

// ParseAlgorithm converts a user supplied name into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case AlgorithmTrialDivision, "trial":
		return AlgorithmTrialDivision, nil
	case AlgorithmSieve:
		return AlgorithmSieve, nil
	}
	return "", cerror.ErrUnknownAlgorithm.GenWithStackByArgs(name)
}

// Source answers primality queries for candidates in [0, limit] after
// Prepare(limit) succeeded. Close releases whatever Prepare acquired and is
// safe to call more than once.
type Source interface {
	Algorithm() Algorithm
	Prepare(limit uint32) error
	IsPrime(n uint32) bool
	// MemoryUsage returns the bytes held by the source.
	MemoryUsage() uint64
	Close()
}

// NewSource creates the source for algorithm. memoryQuota only applies to
// sources that allocate, see BuildSieve.
func NewSource(algorithm Algorithm, memoryQuota uint64) (Source, error) {
	switch algorithm {
	case AlgorithmTrialDivision:
		return trialSource{}, nil
	case AlgorithmSieve:
		return &sieveSource{memoryQuota: memoryQuota}, nil
	}
	return nil, cerror.ErrUnknownAlgorithm.GenWithStackByArgs(string(algorithm))
}

type trialSource struct{}

func (trialSource) Algorithm() Algorithm { return AlgorithmTrialDivision }
func (trialSource) Prepare(uint32) error { return nil }
func (trialSource) IsPrime(n uint32) bool { return IsPrime(n) }
func (trialSource) MemoryUsage() uint64 { return 0 }
func (trialSource) Close() {}

type sieveSource struct {
	memoryQuota uint64
	table       *Table
}

func (s *sieveSource) Algorithm() Algorithm { return AlgorithmSieve }

func (s *sieveSource) Prepare(limit uint32) error {
	s.Close()
	table, err := BuildSieve(limit, s.memoryQuota)
	if err != nil {
		return err
	}
	s.table = table
	return nil
}

func (s *sieveSource) IsPrime(n uint32) bool {
	return s.table.IsPrime(n)
}

func (s *sieveSource) MemoryUsage() uint64 {
	if s.table == nil {
		return 0
	}
	return s.table.Size()
}

func (s *sieveSource) Close() {
	if s.table != nil {
		s.table.Release()
		s.table = nil
	}
}
