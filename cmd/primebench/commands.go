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
	"fmt"

	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/runner"
	"github.com/fabiotj2012/NumerosPrimos-Rust-C-Zig/pkg/version"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	o := newOptions()
	rootCmd := &cobra.Command{
		Use:   "primebench",
		Short: "Enumerate, cross validate and benchmark prime number algorithms",
		Long: "Enumerate the primes up to a limit with trial division or the Sieve of Eratosthenes, " +
			"cross validate both algorithms and time repeated runs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.complete(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return o.flushMetrics()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEnumerate(cmd, o)
		},
	}
	o.addFlags(rootCmd)

	rootCmd.AddCommand(
		newRunCommand(o),
		newVerifyCommand(o),
		newBenchCommand(o),
		newVersionCommand(),
	)
	return rootCmd
}

func newRunCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Print every prime up to the limit with the count and the elapsed time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEnumerate(cmd, o)
		},
	}
}

func runEnumerate(cmd *cobra.Command, o *options) error {
	_, err := runner.Run(runner.NewOptions(o.cfg), cmd.OutOrStdout())
	return err
}

func newVerifyCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that trial division and the sieve agree on every candidate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := runner.Verify(cmd.Context(), runner.NewVerifyOptions(o.cfg))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Checked %d candidates up to %d: %d primes\n", result.Checked, result.Limit, result.Primes)
			if result.HasExpected {
				fmt.Fprintf(out, "Reference count: %d\n", result.Expected)
			}
			fmt.Fprintf(out, "Duration: %s\n", runner.FormatDuration(result.Duration))
			return nil
		},
	}
}

func newBenchCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time repeated runs of each algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := runner.Bench(runner.NewBenchOptions(o.cfg))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-16s %-10s %-10s %-12s %-12s %-32s\n",
				"Algorithm", "Limit", "Runs", "Primes", "Mean", "p50/p95/p99/max")
			for _, res := range results {
				fmt.Fprintf(out, "%-16s %-10d %-10d %-12d %-12s %-32s\n",
					res.Algorithm,
					res.Limit,
					res.Iterations,
					res.Count,
					runner.FormatDuration(res.Mean),
					res.LatencySummary())
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Output version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), version.GetRawInfo())
			return nil
		},
	}
}
