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
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	cerror "github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/errors"
	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/primality"
	"github.com/pingcap/errors"
)

const (
	// DefaultLimit is the largest candidate examined when none is configured.
	DefaultLimit uint32 = 5_000_000
	// DefaultBufferSize is the size of the stdout buffer.
	DefaultBufferSize = 64 * 1024
	// DefaultMemoryQuota caps the sieve table size.
	DefaultMemoryQuota uint64 = 1 << 30 // 1GiB
	// DefaultVerifyConcurrency is the number of chunks verified in parallel.
	DefaultVerifyConcurrency = 4
	// DefaultBenchIterations is the number of timed runs per algorithm.
	DefaultBenchIterations = 5
)

// Config is the configuration of the prime enumeration programs.
type Config struct {
	// Limit is the largest candidate examined, inclusive.
	Limit uint32 `toml:"limit" json:"limit"`
	// Algorithm selects the primality source, see primality.Algorithms.
	Algorithm string `toml:"algorithm" json:"algorithm"`
	// BufferSize is the size in bytes of the output buffer.
	BufferSize int `toml:"buffer-size" json:"buffer_size"`
	// MemoryQuota caps the bytes the sieve table may take, 0 disables the check.
	MemoryQuota uint64 `toml:"memory-quota" json:"memory_quota"`
	// MetricsFile, when set, receives the metrics in Prometheus text format
	// after the run.
	MetricsFile string `toml:"metrics-file" json:"metrics_file"`

	Log    *LogConfig    `toml:"log" json:"log"`
	Verify *VerifyConfig `toml:"verify" json:"verify"`
	Bench  *BenchConfig  `toml:"bench" json:"bench"`
}

// NewDefaultConfig returns the default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Limit:       DefaultLimit,
		Algorithm:   string(primality.AlgorithmSieve),
		BufferSize:  DefaultBufferSize,
		MemoryQuota: DefaultMemoryQuota,
		Log:         NewDefaultLogConfig(),
		Verify:      NewDefaultVerifyConfig(),
		Bench:       NewDefaultBenchConfig(),
	}
}

// ValidateAndAdjust validates the config and fills unset fields with defaults.
func (c *Config) ValidateAndAdjust() error {
	algorithm, err := primality.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return cerror.ErrInvalidConfig.GenWithStackByArgs(
			"algorithm must be one of " + joinAlgorithms(primality.Algorithms))
	}
	c.Algorithm = string(algorithm)

	if c.BufferSize < 0 {
		return cerror.ErrInvalidConfig.GenWithStackByArgs("buffer-size must not be negative")
	}
	if c.BufferSize == 0 {
		c.BufferSize = DefaultBufferSize
	}

	if c.Log == nil {
		c.Log = NewDefaultLogConfig()
	}
	if err := c.Log.ValidateAndAdjust(); err != nil {
		return errors.Trace(err)
	}
	if c.Verify == nil {
		c.Verify = NewDefaultVerifyConfig()
	}
	if err := c.Verify.ValidateAndAdjust(); err != nil {
		return errors.Trace(err)
	}
	if c.Bench == nil {
		c.Bench = NewDefaultBenchConfig()
	}
	if err := c.Bench.ValidateAndAdjust(); err != nil {
		return errors.Trace(err)
	}
	return nil
}

// Load decodes the TOML file at path on top of the defaults. Unknown keys
// are rejected.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, cerror.ErrLoadConfig.GenWithStackByArgs(path)
	}
	if filepath.Ext(path) != ".toml" {
		return nil, cerror.WrapError(cerror.ErrLoadConfig,
			errors.New("config must be a .toml file"), path)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, cerror.WrapError(cerror.ErrLoadConfig, err, path)
	}

	cfg := NewDefaultConfig()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, cerror.WrapError(cerror.ErrLoadConfig, err, path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, cerror.ErrInvalidConfig.GenWithStackByArgs(
			"unknown keys " + strings.Join(keys, ", "))
	}
	if err := cfg.ValidateAndAdjust(); err != nil {
		return nil, errors.Trace(err)
	}
	return cfg, nil
}

// PrimalityAlgorithm returns the validated algorithm.
func (c *Config) PrimalityAlgorithm() primality.Algorithm {
	return primality.Algorithm(c.Algorithm)
}

func joinAlgorithms(algorithms []primality.Algorithm) string {
	names := make([]string, 0, len(algorithms))
	for _, algorithm := range algorithms {
		names = append(names, string(algorithm))
	}
	return strings.Join(names, ", ")
}
