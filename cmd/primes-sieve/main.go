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

// primes-sieve enumerates the primes up to 5,000,000 with the Sieve of Eratosthenes
// and prints them with their count and the elapsed time.
package main

import (
	"fmt"
	"os"

	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/config"
	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/logutil"
	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/primality"
	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/runner"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

func main() {
	cfg := config.NewDefaultConfig()
	cfg.Algorithm = string(primality.AlgorithmSieve)
	cfg.Log.Level = "warn"
	if err := cfg.ValidateAndAdjust(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}
	if err := logutil.InitLogger(logutil.NewConfig(cfg.Log)); err != nil {
		fmt.Fprintf(os.Stderr, "init logger failed: %v\n", err)
		os.Exit(1)
	}

	if _, err := runner.Run(runner.NewOptions(cfg), os.Stdout); err != nil {
		log.Error("prime enumeration failed", zap.Error(err))
		os.Exit(1)
	}
}
