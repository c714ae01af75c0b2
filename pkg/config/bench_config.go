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

package config

import (
	cerror "github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/errors"
	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/primality"
)

// VerifyConfig represents config for cross validating the algorithms.
type VerifyConfig struct {
	// Concurrency is the number of chunks checked in parallel.
	Concurrency int `toml:"concurrency" json:"concurrency"`
}

// NewDefaultVerifyConfig returns the default verify configuration.
func NewDefaultVerifyConfig() *VerifyConfig {
	return &VerifyConfig{Concurrency: DefaultVerifyConcurrency}
}

// ValidateAndAdjust validates the verify configuration.
func (c *VerifyConfig) ValidateAndAdjust() error {
	if c.Concurrency < 0 {
		return cerror.ErrInvalidConfig.GenWithStackByArgs("verify.concurrency must not be negative")
	}
	if c.Concurrency == 0 {
		c.Concurrency = DefaultVerifyConcurrency
	}
	return nil
}

// BenchConfig represents config for timing repeated runs.
type BenchConfig struct {
	// Iterations is the number of timed runs per algorithm.
	Iterations int `toml:"iterations" json:"iterations"`
	// Algorithms lists the algorithms to time.
	Algorithms []string `toml:"algorithms" json:"algorithms"`
}

// NewDefaultBenchConfig returns the default bench configuration.
func NewDefaultBenchConfig() *BenchConfig {
	algorithms := make([]string, 0, len(primality.Algorithms))
	for _, algorithm := range primality.Algorithms {
		algorithms = append(algorithms, string(algorithm))
	}
	return &BenchConfig{
		Iterations: DefaultBenchIterations,
		Algorithms: algorithms,
	}
}

// ValidateAndAdjust validates the bench configuration.
func (c *BenchConfig) ValidateAndAdjust() error {
	if c.Iterations < 0 {
		return cerror.ErrInvalidConfig.GenWithStackByArgs("bench.iterations must not be negative")
	}
	if c.Iterations == 0 {
		c.Iterations = DefaultBenchIterations
	}
	if len(c.Algorithms) == 0 {
		c.Algorithms = NewDefaultBenchConfig().Algorithms
	}
	for i, name := range c.Algorithms {
		algorithm, err := primality.ParseAlgorithm(name)
		if err != nil {
			return cerror.ErrInvalidConfig.GenWithStackByArgs("bench.algorithms contains unknown algorithm " + name)
		}
		c.Algorithms[i] = string(algorithm)
	}
	return nil
}

// PrimalityAlgorithms returns the validated bench algorithms.
func (c *BenchConfig) PrimalityAlgorithms() []primality.Algorithm {
	algorithms := make([]primality.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		algorithms = append(algorithms, primality.Algorithm(name))
	}
	return algorithms
}
