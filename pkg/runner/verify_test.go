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
	"testing"

	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/config"
	cerror "github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/errors"
	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        VerifyOptions
		primes      uint64
		hasExpected bool
	}{
		{"known limit", VerifyOptions{Limit: 100_000, Concurrency: 3, ChunkSize: 1_000}, 9_592, true},
		{"unknown limit", VerifyOptions{Limit: 12_345, Concurrency: 2, ChunkSize: 999}, 1_474, false},
		{"single chunk", VerifyOptions{Limit: 1_000}, 168, true},
		{"zero", VerifyOptions{Limit: 0, ChunkSize: 7}, 0, true},
		{"chunk of one", VerifyOptions{Limit: 50, Concurrency: 8, ChunkSize: 1}, 15, false},
	}
	for _, tt := range tests {
		result, err := Verify(context.Background(), tt.opts)
		require.NoError(t, err, tt.name)
		require.Equal(t, uint64(tt.opts.Limit)+1, result.Checked, tt.name)
		require.Equal(t, tt.primes, result.Primes, tt.name)
		require.Equal(t, tt.hasExpected, result.HasExpected, tt.name)
	}
}

func TestVerifyDefaultLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("skip full default range in short mode")
	}
	t.Parallel()

	result, err := Verify(context.Background(), VerifyOptions{Limit: config.DefaultLimit, Concurrency: 4})
	require.NoError(t, err)
	require.Equal(t, uint64(348_513), result.Primes)
	require.Equal(t, uint64(348_513), result.Expected)
}

func TestVerifyMemoryQuota(t *testing.T) {
	t.Parallel()

	_, err := Verify(context.Background(), VerifyOptions{Limit: 1_000, MemoryQuota: 10})
	require.True(t, cerror.Is(err, cerror.ErrSieveAllocate))
}

func TestVerifyCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Verify(ctx, VerifyOptions{Limit: 100_000, ChunkSize: 1_000})
	require.Equal(t, context.Canceled, errors.Cause(err))
}

func TestNewVerifyOptions(t *testing.T) {
	t.Parallel()

	cfg := config.NewDefaultConfig()
	cfg.Verify.Concurrency = 6
	opts := NewVerifyOptions(cfg)
	require.Equal(t, config.DefaultLimit, opts.Limit)
	require.Equal(t, 6, opts.Concurrency)
	require.Equal(t, config.DefaultMemoryQuota, opts.MemoryQuota)
}
