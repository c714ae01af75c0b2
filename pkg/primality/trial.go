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

import "math"

// IsPrime reports whether n is prime using trial division over the 6k±1
// wheel. Every prime above 3 is congruent to 1 or 5 modulo 6, so after
// ruling out 2 and 3 only the pairs (6k-1, 6k+1) need to be tried.
func IsPrime(n uint32) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	bound := isqrtCeil(n)
	for i := uint64(5); i <= bound; i += 6 {
		// i+2 may exceed bound on the last step, which only costs a
		// redundant division.
		if uint64(n)%i == 0 || uint64(n)%(i+2) == 0 {
			return false
		}
	}
	return true
}

// isqrtCeil returns the smallest s such that s*s >= n. math.Sqrt is not
// exact for every integer so the truncated root is corrected upward.
func isqrtCeil(n uint32) uint64 {
	s := uint64(math.Sqrt(float64(n)))
	if s*s < uint64(n) {
		s++
	}
	return s
}

// isqrtFloor returns the largest s such that s*s <= n.
func isqrtFloor(n uint32) uint64 {
	s := uint64(math.Sqrt(float64(n)))
	for s*s > uint64(n) {
		s--
	}
	for (s+1)*(s+1) <= uint64(n) {
		s++
	}
	return s
}
