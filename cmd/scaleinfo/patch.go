package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/node"
	"github.com/cwbudde/algo-signal/dsp/patch"
	"github.com/cwbudde/algo-signal/dsp/signal"
)

type patchOptions struct {
	value   float64
	samples int
}

var patchOpts = patchOptions{value: 0.5, samples: 8}

var patchCmd = &cobra.Command{
	Use:   "patch FILE",
	Short: "Feed a constant into a JSON or YAML patch and print its output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPatch(cmd.OutOrStdout(), args[0], patchOpts)
	},
}

func init() {
	patchCmd.Flags().Float64Var(&patchOpts.value, "value", patchOpts.value, "constant fed into the patch input")
	patchCmd.Flags().IntVar(&patchOpts.samples, "samples", patchOpts.samples, "number of output samples to print")
	rootCmd.AddCommand(patchCmd)
}

func runPatch(w io.Writer, path string, opts patchOptions) error {
	if opts.samples <= 0 {
		return fmt.Errorf("samples must be > 0: %d", opts.samples)
	}

	ctx := newContext(node.WithConfig(core.WithBlockSize(opts.samples)))

	p, err := patch.Load(ctx, path)
	if err != nil {
		return err
	}
	defer p.Dispose()

	src := signal.NewSignal(ctx, opts.value)
	defer src.Dispose()

	if err := node.Connect(src, p); err != nil {
		return err
	}

	out, err := ctx.RenderBlock(p)
	if err != nil {
		return err
	}

	for i, v := range out {
		fmt.Fprintf(w, "%d\t%g\n", i, v)
	}

	return nil
}
