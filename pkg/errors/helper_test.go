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

package errors

import (
	"fmt"
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	t.Parallel()
	var (
		err       = errors.New("cause error")
		testCases = []struct {
			rfcError *errors.Error
			err      error
			isNil    bool
			expected string
			args     []interface{}
		}{
			{ErrLoadConfig, nil, true, "", nil},
			{
				ErrLoadConfig, err, false,
				"[PRIME:ErrLoadConfig]load config file primes.toml failed: cause error",
				[]interface{}{"primes.toml"},
			},
		}
	)
	for _, tc := range testCases {
		we := WrapError(tc.rfcError, tc.err, tc.args...)
		if tc.isNil {
			require.Nil(t, we)
		} else {
			require.NotNil(t, we)
			require.Equal(t, tc.expected, we.Error())
		}
	}
}

func TestRFCCode(t *testing.T) {
	t.Parallel()
	rfc, ok := RFCCode(ErrInvalidConfig)
	require.True(t, ok)
	require.Contains(t, rfc, "ErrInvalidConfig")

	err := fmt.Errorf("inner error: short write")
	rfc, ok = RFCCode(err)
	require.False(t, ok)
	require.Equal(t, errors.RFCErrorCode(""), rfc)

	wrapped := WrapError(ErrOutputWrite, err)
	rfc, ok = RFCCode(wrapped)
	require.True(t, ok)
	require.Contains(t, rfc, "ErrOutputWrite")

	anoErr := errors.Annotate(ErrSieveAllocate.GenWithStackByArgs(10, 11, 1), "annotated sieve error")
	rfc, ok = RFCCode(anoErr)
	require.True(t, ok)
	require.Contains(t, rfc, "ErrSieveAllocate")
}

func TestIs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"plain error", errors.New("test"), false},
		{"same code", ErrUnknownAlgorithm.GenWithStackByArgs("wheel"), true},
		{"other code", ErrInvalidConfig.GenWithStackByArgs("limit"), false},
		{"wrapped", WrapError(ErrUnknownAlgorithm, errors.New("test"), "wheel"), true},
		{"std wrapped", fmt.Errorf("run: %w", ErrUnknownAlgorithm.GenWithStackByArgs("x")), true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Is(tt.err, ErrUnknownAlgorithm), "case:%s", tt.name)
	}
}
