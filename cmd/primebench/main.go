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
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cerror "github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/errors"
)

const (
	ExitCodeExecuteFailed      = 1
	ExitCodeInvalidConfig      = 2
	ExitCodeDecodeConfigFailed = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case cerror.Is(err, cerror.ErrInvalidConfig):
		return ExitCodeInvalidConfig
	case cerror.Is(err, cerror.ErrLoadConfig):
		return ExitCodeDecodeConfigFailed
	}
	return ExitCodeExecuteFailed
}
