package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-signal/dsp/node"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "scaleinfo",
	Short:         "Inspect range scalers and render signal patches",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "scaleinfo:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log graph lifecycle events to stderr")
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newContext(opts ...node.Option) *node.Context {
	return node.NewContext(append([]node.Option{node.WithLogger(newLogger())}, opts...)...)
}
