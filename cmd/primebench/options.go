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

package main

import (
	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/config"
	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/logutil"
	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/metrics"
	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/version"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	FlagConfig      = "config"
	FlagLimit       = "limit"
	FlagAlgorithm   = "algorithm"
	FlagBufferSize  = "buffer-size"
	FlagMemoryQuota = "memory-quota"
	FlagLogLevel    = "log-level"
	FlagLogFile     = "log-file"
	FlagMetricsFile = "metrics-file"
	FlagConcurrency = "concurrency"
	FlagIterations  = "iterations"
)

// options holds the command line flags and the config resolved from them.
type options struct {
	configPath  string
	limit       uint32
	algorithm   string
	bufferSize  int
	memoryQuota uint64
	logLevel    string
	logFile     string
	metricsFile string
	concurrency int
	iterations  int

	cfg      *config.Config
	registry *prometheus.Registry
}

func newOptions() *options {
	registry := prometheus.NewRegistry()
	metrics.InitMetrics(registry)
	return &options{registry: registry}
}

func (o *options) addFlags(cmd *cobra.Command) {
	defaults := config.NewDefaultConfig()
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.configPath, FlagConfig, "c", "", "configuration file path")
	flags.Uint32Var(&o.limit, FlagLimit, defaults.Limit, "largest candidate examined")
	flags.StringVar(&o.algorithm, FlagAlgorithm, defaults.Algorithm, "primality algorithm: trial-division or sieve")
	flags.IntVar(&o.bufferSize, FlagBufferSize, defaults.BufferSize, "output buffer size in bytes")
	flags.Uint64Var(&o.memoryQuota, FlagMemoryQuota, defaults.MemoryQuota, "sieve table memory quota in bytes, 0 means unlimited")
	flags.StringVar(&o.logLevel, FlagLogLevel, defaults.Log.Level, "log level")
	flags.StringVar(&o.logFile, FlagLogFile, "", "log file path, logs go to stderr if empty")
	flags.StringVar(&o.metricsFile, FlagMetricsFile, "", "write metrics in Prometheus text format to this file")
	flags.IntVar(&o.concurrency, FlagConcurrency, defaults.Verify.Concurrency, "chunks verified in parallel")
	flags.IntVar(&o.iterations, FlagIterations, defaults.Bench.Iterations, "timed runs per algorithm")
}

// complete loads the config file, applies the flags set explicitly on the
// command line and initializes the logger.
func (o *options) complete(cmd *cobra.Command) error {
	cfg := config.NewDefaultConfig()
	if o.configPath != "" {
		var err error
		cfg, err = config.Load(o.configPath)
		if err != nil {
			return errors.Trace(err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed(FlagLimit) {
		cfg.Limit = o.limit
	}
	if flags.Changed(FlagAlgorithm) {
		cfg.Algorithm = o.algorithm
	}
	if flags.Changed(FlagBufferSize) {
		cfg.BufferSize = o.bufferSize
	}
	if flags.Changed(FlagMemoryQuota) {
		cfg.MemoryQuota = o.memoryQuota
	}
	if flags.Changed(FlagLogLevel) {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed(FlagLogFile) {
		cfg.Log.File.Filename = o.logFile
	}
	if flags.Changed(FlagMetricsFile) {
		cfg.MetricsFile = o.metricsFile
	}
	if flags.Changed(FlagConcurrency) {
		cfg.Verify.Concurrency = o.concurrency
	}
	if flags.Changed(FlagIterations) {
		cfg.Bench.Iterations = o.iterations
	}
	if err := cfg.ValidateAndAdjust(); err != nil {
		return errors.Trace(err)
	}

	logCfg := logutil.NewConfig(cfg.Log)
	logCfg.Output = cmd.ErrOrStderr()
	if err := logutil.InitLogger(logCfg); err != nil {
		return errors.Trace(err)
	}
	version.LogVersionInfo("primebench")
	o.cfg = cfg
	return nil
}

// flushMetrics writes the metrics file if one is configured.
func (o *options) flushMetrics() error {
	if o.cfg == nil || o.cfg.MetricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(o.cfg.MetricsFile, o.registry); err != nil {
		return errors.Trace(err)
	}
	log.Info("metrics written", zap.String("path", o.cfg.MetricsFile))
	return nil
}
