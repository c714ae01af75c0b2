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
	"bytes"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/config"
	cerror "github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/errors"
	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/primality"
	"github.com/stretchr/testify/require"
)

var elapsedLine = regexp.MustCompile(`^Tempo gasto: \d+\.\d{3} segundos$`)

// splitListing returns the banner, the prime lines and the two summary
// lines of a run listing.
func splitListing(t *testing.T, out string) (string, []string, string, string) {
	t.Helper()
	require.True(t, strings.HasSuffix(out, "\n"))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	n := len(lines)
	require.Equal(t, "", lines[n-3], "blank line before the summary")
	return lines[0], lines[1 : n-3], lines[n-2], lines[n-1]
}

func TestRunListing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		algorithm primality.Algorithm
		banner    string
	}{
		{primality.AlgorithmTrialDivision, "Contando números primos de 1 a 30..."},
		{primality.AlgorithmSieve, "Contando números primos de 1 a 30 (usando Crivo de Eratóstenes)..."},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		result, err := Run(Options{Limit: 30, Algorithm: tt.algorithm}, &out)
		require.NoError(t, err)

		banner, primes, countLine, timeLine := splitListing(t, out.String())
		require.Equal(t, tt.banner, banner)
		require.Equal(t, []string{"2", "3", "5", "7", "11", "13", "17", "19", "23", "29"}, primes)
		require.Equal(t, "Quantidade de números primos encontrados: 10", countLine)
		require.Regexp(t, elapsedLine, timeLine)

		require.Equal(t, uint64(10), result.Count)
		require.Equal(t, uint32(29), result.Largest)
		require.Equal(t, tt.algorithm, result.Algorithm)
		require.NotEmpty(t, result.RunID)
	}
}

func TestRunBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		limit  uint32
		primes []string
	}{
		{0, []string{}},
		{1, []string{}},
		{2, []string{"2"}},
		{3, []string{"2", "3"}},
		{4, []string{"2", "3"}},
	}
	for _, algorithm := range primality.Algorithms {
		for _, tt := range tests {
			var out bytes.Buffer
			result, err := Run(Options{Limit: tt.limit, Algorithm: algorithm}, &out)
			require.NoError(t, err)

			_, primes, countLine, _ := splitListing(t, out.String())
			require.Equal(t, tt.primes, primes, "algorithm=%s limit=%d", algorithm, tt.limit)
			require.Equal(t, uint64(len(tt.primes)), result.Count)
			require.Equal(t, "Quantidade de números primos encontrados: "+strconv.Itoa(len(tt.primes)), countLine)
		}
	}
}

func TestRunAscendingAndAgreeing(t *testing.T) {
	t.Parallel()

	const limit = 100_000
	listings := make(map[primality.Algorithm][]string)
	for _, algorithm := range primality.Algorithms {
		var out bytes.Buffer
		result, err := Run(Options{Limit: limit, Algorithm: algorithm, BufferSize: 512}, &out)
		require.NoError(t, err)
		require.Equal(t, uint64(9_592), result.Count)
		require.Equal(t, uint32(99_991), result.Largest)

		_, primes, _, _ := splitListing(t, out.String())
		prev := int64(-1)
		for _, line := range primes {
			p, err := strconv.ParseInt(line, 10, 64)
			require.NoError(t, err)
			require.Greater(t, p, prev)
			prev = p
		}
		listings[algorithm] = primes
	}
	require.Equal(t, listings[primality.AlgorithmTrialDivision], listings[primality.AlgorithmSieve])
}

func TestRunDefaultLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("skip full default range in short mode")
	}
	t.Parallel()

	for _, algorithm := range primality.Algorithms {
		var out bytes.Buffer
		result, err := Run(Options{Limit: config.DefaultLimit, Algorithm: algorithm}, &out)
		require.NoError(t, err)
		require.Equal(t, uint64(348_513), result.Count)
		require.Equal(t, uint32(4_999_999), result.Largest)

		_, _, countLine, _ := splitListing(t, out.String())
		require.Equal(t, "Quantidade de números primos encontrados: 348513", countLine)
	}
}

// failingWriter fails every write once budget bytes were accepted.
type failingWriter struct {
	budget int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.budget {
		n := w.budget
		w.budget = 0
		return n, errors.New("broken pipe")
	}
	w.budget -= len(p)
	return len(p), nil
}

// trackingSource records whether it was closed.
type trackingSource struct {
	primality.Source
	closed bool
}

func (s *trackingSource) Close() {
	s.closed = true
	s.Source.Close()
}

func TestRunWriteError(t *testing.T) {
	t.Parallel()

	for _, budget := range []int{0, 100, 10_000} {
		inner, err := primality.NewSource(primality.AlgorithmSieve, 0)
		require.NoError(t, err)
		source := &trackingSource{Source: inner}

		_, err = run(source, Options{Limit: 100_000, BufferSize: 64}, &failingWriter{budget: budget})
		require.Error(t, err)
		require.True(t, cerror.Is(err, cerror.ErrOutputWrite), "budget=%d err=%v", budget, err)
		require.True(t, source.closed)
		require.Equal(t, uint64(0), source.MemoryUsage())
	}
}

func TestRunSieveMemoryQuota(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	_, err := Run(Options{Limit: 1_000, Algorithm: primality.AlgorithmSieve, MemoryQuota: 100}, &out)
	require.True(t, cerror.Is(err, cerror.ErrSieveAllocate))
	require.NotContains(t, out.String(), "Quantidade")

	// trial division allocates nothing, the quota does not apply
	_, err = Run(Options{Limit: 1_000, Algorithm: primality.AlgorithmTrialDivision, MemoryQuota: 100}, &out)
	require.NoError(t, err)
}

func TestRunUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := Run(Options{Limit: 10, Algorithm: "atkin"}, &bytes.Buffer{})
	require.True(t, cerror.Is(err, cerror.ErrUnknownAlgorithm))
}

func TestNewOptions(t *testing.T) {
	t.Parallel()

	cfg := config.NewDefaultConfig()
	cfg.Limit = 77
	cfg.Algorithm = "trial-division"
	require.NoError(t, cfg.ValidateAndAdjust())

	opts := NewOptions(cfg)
	require.Equal(t, Options{
		Limit:       77,
		Algorithm:   primality.AlgorithmTrialDivision,
		BufferSize:  config.DefaultBufferSize,
		MemoryQuota: config.DefaultMemoryQuota,
	}, opts)
}
