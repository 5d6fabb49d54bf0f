package signal

import (
	"fmt"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/node"
)

// ScaleOptions holds the output range of a Scale.
type ScaleOptions struct {
	// OutputMin is the output value for input 0.
	OutputMin float64 `json:"outputMin" yaml:"outputMin" mapstructure:"outputMin"`
	// OutputMax is the output value for input 1.
	OutputMax float64 `json:"outputMax" yaml:"outputMax" mapstructure:"outputMax"`
}

// DefaultScaleOptions returns the normalized range [0, 1].
func DefaultScaleOptions() ScaleOptions {
	return ScaleOptions{OutputMin: 0, OutputMax: 1}
}

// ScaleOption mutates ScaleOptions.
type ScaleOption func(*ScaleOptions)

// WithOutputMin sets the output value for input 0.
func WithOutputMin(v float64) ScaleOption {
	return func(o *ScaleOptions) { o.OutputMin = v }
}

// WithOutputMax sets the output value for input 1.
func WithOutputMax(v float64) ScaleOption {
	return func(o *ScaleOptions) { o.OutputMax = v }
}

// WithRange sets both bounds.
func WithRange(outputMin, outputMax float64) ScaleOption {
	return func(o *ScaleOptions) {
		o.OutputMin = outputMin
		o.OutputMax = outputMax
	}
}

// WithScaleOptions replaces the options wholesale.
func WithScaleOptions(opts ScaleOptions) ScaleOption {
	return func(o *ScaleOptions) { *o = opts }
}

// Scale linearly maps a normalized input onto [OutputMin, OutputMax]:
//
//	out = in*(max-min) + min
//
// It owns a Multiply (its input terminal) wired once into an Add (its
// output terminal). Bounds are not ordered; max < min inverts the mapping,
// and non-finite bounds pass through unchecked.
type Scale struct {
	ctx    *node.Context
	input  *Multiply
	output *Add

	outputMin float64
	outputMax float64
	disposed  bool
}

// NewScale creates a Scale. Without options it maps onto [0, 1].
func NewScale(ctx *node.Context, opts ...ScaleOption) *Scale {
	cfg := DefaultScaleOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	s := &Scale{
		ctx:       ctx,
		input:     NewMultiply(ctx, 1),
		output:    NewAdd(ctx, 0),
		outputMin: cfg.OutputMin,
		outputMax: cfg.OutputMax,
	}

	// Both units are fresh and share ctx.
	if err := node.ConnectPorts(s.input.Output(), s.output.Input()); err != nil {
		panic("signal: wire scale: " + err.Error())
	}

	ctx.Update(s.setRange)

	ctx.Logger().Debug("scale created", "outputMin", cfg.OutputMin, "outputMax", cfg.OutputMax)

	return s
}

// Name returns "Scale".
func (s *Scale) Name() string { return "Scale" }

// Input returns the input terminal.
func (s *Scale) Input() *node.Port { return s.input.Input() }

// Output returns the output terminal.
func (s *Scale) Output() *node.Port { return s.output.Output() }

// Min returns the output value for input 0.
func (s *Scale) Min() float64 {
	var v float64
	s.ctx.Update(func() { v = s.outputMin })
	return v
}

// Max returns the output value for input 1.
func (s *Scale) Max() float64 {
	var v float64
	s.ctx.Update(func() { v = s.outputMax })
	return v
}

// SetMin sets the output value for input 0.
func (s *Scale) SetMin(v float64) error {
	return s.update(func() { s.outputMin = v })
}

// SetMax sets the output value for input 1.
func (s *Scale) SetMax(v float64) error {
	return s.update(func() { s.outputMax = v })
}

// SetRange sets both bounds in one update.
func (s *Scale) SetRange(outputMin, outputMax float64) error {
	return s.update(func() {
		s.outputMin = outputMin
		s.outputMax = outputMax
	})
}

// Coefficient returns the factor applied to the input (max - min).
func (s *Scale) Coefficient() float64 { return s.input.Factor() }

// Offset returns the value added after scaling (min).
func (s *Scale) Offset() float64 { return s.output.Addend() }

// Disposed reports whether Dispose has been called.
func (s *Scale) Disposed() bool {
	if s.ctx == nil {
		return s.disposed
	}
	var disposed bool
	s.ctx.Update(func() { disposed = s.disposed })
	return disposed
}

// Dispose releases the Scale and the two units it owns. It is safe to call
// more than once. Edges to external peers are left in place.
func (s *Scale) Dispose() {
	if s.ctx != nil {
		first := false
		s.ctx.Update(func() {
			first = !s.disposed
			s.disposed = true
		})
		if first {
			s.ctx.Logger().Debug("scale disposed")
		}
	} else {
		s.disposed = true
	}

	if s.input != nil {
		s.input.Dispose()
	}
	if s.output != nil {
		s.output.Dispose()
	}
}

func (s *Scale) update(mutate func()) error {
	var err error
	s.ctx.Update(func() {
		if s.disposed {
			err = fmt.Errorf("scale: %w", node.ErrDisposed)
			return
		}
		mutate()
		s.setRange()
	})
	return err
}

// setRange pushes the bounds into the owned units. The caller holds the render lock.
func (s *Scale) setRange() {
	s.output.addend.SetValue(s.outputMin)
	s.input.factor.SetValue(s.outputMax - s.outputMin)

	if !core.IsFinite(s.outputMin) || !core.IsFinite(s.outputMax) {
		s.ctx.Logger().Warn("scale bounds not finite", "outputMin", s.outputMin, "outputMax", s.outputMax)
	}
}
