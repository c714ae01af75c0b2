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
	"testing"

	cerror "github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Algorithm
		wantErr bool
	}{
		{"sieve", AlgorithmSieve, false},
		{" SIEVE ", AlgorithmSieve, false},
		{"trial-division", AlgorithmTrialDivision, false},
		{"trial", AlgorithmTrialDivision, false},
		{"", "", true},
		{"atkin", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.input)
		if tt.wantErr {
			require.True(t, cerror.Is(err, cerror.ErrUnknownAlgorithm), "input=%q", tt.input)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestNewSourceUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	source, err := NewSource("wheel", 0)
	require.Nil(t, source)
	require.True(t, cerror.Is(err, cerror.ErrUnknownAlgorithm))
}

func TestSourcesAgree(t *testing.T) {
	t.Parallel()

	const limit = 20_000
	trial, err := NewSource(AlgorithmTrialDivision, 0)
	require.NoError(t, err)
	sieve, err := NewSource(AlgorithmSieve, 0)
	require.NoError(t, err)
	defer trial.Close()
	defer sieve.Close()

	require.NoError(t, trial.Prepare(limit))
	require.NoError(t, sieve.Prepare(limit))
	require.Equal(t, AlgorithmTrialDivision, trial.Algorithm())
	require.Equal(t, AlgorithmSieve, sieve.Algorithm())
	require.Equal(t, uint64(0), trial.MemoryUsage())
	require.Equal(t, uint64(limit+1), sieve.MemoryUsage())

	for n := uint32(0); n <= limit; n++ {
		require.Equal(t, trial.IsPrime(n), sieve.IsPrime(n), "n=%d", n)
	}
}

func TestSieveSourceLifecycle(t *testing.T) {
	t.Parallel()

	source, err := NewSource(AlgorithmSieve, 64)
	require.NoError(t, err)

	err = source.Prepare(100)
	require.True(t, cerror.Is(err, cerror.ErrSieveAllocate))
	require.Equal(t, uint64(0), source.MemoryUsage())

	require.NoError(t, source.Prepare(50))
	require.Equal(t, uint64(51), source.MemoryUsage())
	require.True(t, source.IsPrime(47))

	// preparing again replaces the previous table
	require.NoError(t, source.Prepare(10))
	require.Equal(t, uint64(11), source.MemoryUsage())

	source.Close()
	source.Close()
	require.Equal(t, uint64(0), source.MemoryUsage())
}
