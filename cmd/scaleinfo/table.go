package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/node"
	"github.com/cwbudde/algo-signal/dsp/signal"
)

type tableOptions struct {
	min, max float64
	steps    int
	input    string
	freq     float64
	seed     int64
}

var tableOpts = tableOptions{min: 0, max: 1, steps: 11, input: "ramp", seed: 1}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the transfer table of a range scaler over a normalized input",
	Long: `Print the transfer table of a range scaler.

The input block is normalized to [0, 1]:
  ramp   evenly spaced points, 0 and 1 included
  sine   0.5 + 0.5*sin, one cycle over the table unless --freq is set
  noise  uniform white noise from --seed`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runTable(cmd.OutOrStdout(), tableOpts)
	},
}

func init() {
	tableCmd.Flags().Float64Var(&tableOpts.min, "min", tableOpts.min, "output value for input 0")
	tableCmd.Flags().Float64Var(&tableOpts.max, "max", tableOpts.max, "output value for input 1")
	tableCmd.Flags().IntVar(&tableOpts.steps, "steps", tableOpts.steps, "number of input points")
	tableCmd.Flags().StringVar(&tableOpts.input, "input", tableOpts.input, "input block: ramp, sine or noise")
	tableCmd.Flags().Float64Var(&tableOpts.freq, "freq", tableOpts.freq, "sine frequency in Hz (0 = one cycle over the table)")
	tableCmd.Flags().Int64Var(&tableOpts.seed, "seed", tableOpts.seed, "noise seed")
	rootCmd.AddCommand(tableCmd)
}

func runTable(w io.Writer, opts tableOptions) error {
	if opts.steps < 2 {
		return fmt.Errorf("steps must be >= 2: %d", opts.steps)
	}

	ctx := newContext(node.WithConfig(core.WithBlockSize(opts.steps)))

	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(ctx.Config().SampleRate)},
		signal.WithSeed(opts.seed),
	)

	in, err := tableInput(gen, opts)
	if err != nil {
		return err
	}

	src := signal.NewBufferSource(ctx, in)
	defer src.Dispose()

	scale := signal.NewScale(ctx, signal.WithRange(opts.min, opts.max))
	defer scale.Dispose()

	if err := node.Connect(src, scale); err != nil {
		return err
	}

	out, err := ctx.RenderBlock(scale)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "range [%g, %g]  coefficient %g  offset %g\n", scale.Min(), scale.Max(), scale.Coefficient(), scale.Offset())
	if opts.input == "noise" {
		fmt.Fprintf(w, "input noise  seed %d\n\n", gen.Seed())
	} else {
		fmt.Fprintf(w, "input %s\n\n", opts.input)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "input\toutput\t")
	for i, x := range in {
		fmt.Fprintf(tw, "%.4f\t%.4f\t\n", x, out[i])
	}

	return tw.Flush()
}

// tableInput generates a block of opts.steps samples in [0, 1].
func tableInput(gen *signal.Generator, opts tableOptions) ([]float64, error) {
	var (
		in  []float64
		err error
	)

	switch opts.input {
	case "ramp":
		return gen.Ramp(opts.steps)
	case "sine":
		freq := opts.freq
		if freq <= 0 {
			freq = gen.Config().SampleRate / float64(opts.steps)
		}
		in, err = gen.Sine(freq, 0.5, opts.steps)
	case "noise":
		in, err = gen.WhiteNoise(0.5, opts.steps)
	default:
		return nil, fmt.Errorf("unknown input %q (want ramp, sine or noise)", opts.input)
	}
	if err != nil {
		return nil, err
	}

	for i := range in {
		in[i] += 0.5
	}

	return in, nil
}
