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

// knownPrimeCounts holds pi(x), the number of primes <= x, for the limits
// the programs are usually run with.
var knownPrimeCounts = map[uint32]uint64{
	0:          0,
	1:          0,
	2:          1,
	10:         4,
	100:        25,
	1_000:      168,
	10_000:     1_229,
	100_000:    9_592,
	1_000_000:  78_498,
	5_000_000:  348_513,
	10_000_000: 664_579,
}

// KnownPrimeCount returns the reference prime count for limit, if known.
func KnownPrimeCount(limit uint32) (uint64, bool) {
	count, ok := knownPrimeCounts[limit]
	return count, ok
}
