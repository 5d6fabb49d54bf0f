package patch

import (
	"github.com/cwbudde/algo-signal/dsp/node"
	"github.com/cwbudde/algo-signal/dsp/signal"
)

type signalParams struct {
	Value float64 `mapstructure:"value"`
}

type multiplyParams struct {
	Factor float64 `mapstructure:"factor"`
}

type addParams struct {
	Addend float64 `mapstructure:"addend"`
}

// scaleParams accepts a "value" key, the inherited signal default, and
// ignores it: a scaler has no constant output of its own.
type scaleParams struct {
	signal.ScaleOptions `mapstructure:",squash"`

	Value float64 `mapstructure:"value"`
}

// DefaultRegistry returns a Registry holding the built-in node types:
// "signal" (value), "multiply" (factor, default 1), "add" (addend) and
// "scale" (outputMin, outputMax, default 0 and 1; value is accepted and
// ignored).
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister("signal", func(ctx *node.Context, p Params) (node.Node, error) {
		var sp signalParams
		if err := p.Decode(&sp); err != nil {
			return nil, err
		}
		return signal.NewSignal(ctx, sp.Value), nil
	})
	r.MustRegister("multiply", func(ctx *node.Context, p Params) (node.Node, error) {
		mp := multiplyParams{Factor: 1}
		if err := p.Decode(&mp); err != nil {
			return nil, err
		}
		return signal.NewMultiply(ctx, mp.Factor), nil
	})
	r.MustRegister("add", func(ctx *node.Context, p Params) (node.Node, error) {
		var ap addParams
		if err := p.Decode(&ap); err != nil {
			return nil, err
		}
		return signal.NewAdd(ctx, ap.Addend), nil
	})
	r.MustRegister("scale", func(ctx *node.Context, p Params) (node.Node, error) {
		sp := scaleParams{ScaleOptions: signal.DefaultScaleOptions()}
		if err := p.Decode(&sp); err != nil {
			return nil, err
		}
		return signal.NewScale(ctx, signal.WithScaleOptions(sp.ScaleOptions)), nil
	})

	return r
}
