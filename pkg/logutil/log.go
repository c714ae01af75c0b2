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

package logutil

import (
	"io"
	"os"

	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/config"
	cerror "github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config describes where and how the programs log.
type Config struct {
	Level  string
	File   string
	Output io.Writer

	FileMaxSize    int
	FileMaxDays    int
	FileMaxBackups int
}

// NewConfig converts the log section of the program config.
func NewConfig(cfg *config.LogConfig) *Config {
	c := &Config{Level: cfg.Level}
	if cfg.File != nil {
		c.File = cfg.File.Filename
		c.FileMaxSize = cfg.File.MaxSize
		c.FileMaxDays = cfg.File.MaxDays
		c.FileMaxBackups = cfg.File.MaxBackups
	}
	return c
}

// InitLogger initializes the global pingcap logger. Logs are written to the
// configured file, to cfg.Output, or to stderr otherwise, never to stdout.
func InitLogger(cfg *Config, opts ...zap.Option) error {
	logCfg := &log.Config{
		Level: cfg.Level,
		File: log.FileLogConfig{
			Filename:   cfg.File,
			MaxSize:    cfg.FileMaxSize,
			MaxDays:    cfg.FileMaxDays,
			MaxBackups: cfg.FileMaxBackups,
		},
	}

	var (
		logger *zap.Logger
		props  *log.ZapProperties
		err    error
	)
	if cfg.File != "" {
		logger, props, err = log.InitLogger(logCfg, opts...)
	} else {
		output := cfg.Output
		if output == nil {
			output = os.Stderr
		}
		syncer := zapcore.AddSync(output)
		logger, props, err = log.InitLoggerWithWriteSyncer(logCfg, syncer, syncer, opts...)
	}
	if err != nil {
		return cerror.WrapError(cerror.ErrInitLogger, err)
	}
	log.ReplaceGlobals(logger, props)
	return nil
}
