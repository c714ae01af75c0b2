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
	"github.com/pingcap/errors"
)

// errors
var (
	// primality related errors
	ErrSieveAllocate = errors.Normalize(
		"allocate sieve table for limit %d failed, need %d bytes, memory quota %d bytes",
		errors.RFCCodeText("PRIME:ErrSieveAllocate"),
	)
	ErrUnknownAlgorithm = errors.Normalize(
		"unknown primality algorithm %s",
		errors.RFCCodeText("PRIME:ErrUnknownAlgorithm"),
	)
	ErrPrimalityMismatch = errors.Normalize(
		"trial division and sieve disagree on %d, trial division: %t, sieve: %t",
		errors.RFCCodeText("PRIME:ErrPrimalityMismatch"),
	)
	ErrPrimeCountMismatch = errors.Normalize(
		"found %d primes up to %d, expected %d",
		errors.RFCCodeText("PRIME:ErrPrimeCountMismatch"),
	)

	// output related errors
	ErrOutputWrite = errors.Normalize(
		"write prime output failed",
		errors.RFCCodeText("PRIME:ErrOutputWrite"),
	)
	ErrWriteMetrics = errors.Normalize(
		"write metrics to %s failed",
		errors.RFCCodeText("PRIME:ErrWriteMetrics"),
	)

	// config related errors
	ErrInvalidConfig = errors.Normalize(
		"invalid config: %s",
		errors.RFCCodeText("PRIME:ErrInvalidConfig"),
	)
	ErrLoadConfig = errors.Normalize(
		"load config file %s failed",
		errors.RFCCodeText("PRIME:ErrLoadConfig"),
	)
	ErrInitLogger = errors.Normalize(
		"init logger failed",
		errors.RFCCodeText("PRIME:ErrInitLogger"),
	)
)
