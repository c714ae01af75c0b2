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
	"strings"

	cerror "github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// LogConfig represents log config for the programs. Logs never go to stdout,
// which carries the prime listing.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" json:"level"`
	// File is the log file path, logs go to stderr when it is empty.
	File *LogFileConfig `toml:"file" json:"file"`
}

// LogFileConfig represents log file config.
type LogFileConfig struct {
	Filename   string `toml:"filename" json:"filename"`
	MaxSize    int    `toml:"max-size" json:"max_size"`
	MaxDays    int    `toml:"max-days" json:"max_days"`
	MaxBackups int    `toml:"max-backups" json:"max_backups"`
}

// NewDefaultLogConfig returns the default log configuration.
func NewDefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level: "info",
		File: &LogFileConfig{
			MaxSize:    300, // 300MB
			MaxDays:    0,
			MaxBackups: 0,
		},
	}
}

// ValidateAndAdjust validates the log configuration.
func (c *LogConfig) ValidateAndAdjust() error {
	if c.Level == "" {
		c.Level = "info"
	}
	c.Level = strings.ToLower(c.Level)
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return cerror.ErrInvalidConfig.GenWithStackByArgs("unknown log level " + c.Level)
	}
	if c.File == nil {
		c.File = NewDefaultLogConfig().File
	}
	if c.File.MaxSize < 0 || c.File.MaxDays < 0 || c.File.MaxBackups < 0 {
		return cerror.ErrInvalidConfig.GenWithStackByArgs("log file rotation settings must not be negative")
	}
	return nil
}
