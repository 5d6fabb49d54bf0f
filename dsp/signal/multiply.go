package signal

import (
	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/node"
	"github.com/cwbudde/algo-vecmath"
)

// Multiply scales its input by a settable factor: out = in * factor.
type Multiply struct {
	*node.Unit
	factor *node.Param
	coeffs []float64
}

// NewMultiply creates a Multiply with the given factor.
func NewMultiply(ctx *node.Context, factor float64) *Multiply {
	m := &Multiply{factor: node.NewParam(factor)}
	m.Unit = node.NewUnit(ctx, "Multiply", node.ProcessorFunc(m.process))
	return m
}

func (m *Multiply) process(in, out []float64) {
	m.coeffs = core.EnsureLen(m.coeffs, len(in))
	m.factor.Fill(m.coeffs)
	vecmath.MulBlock(out, in, m.coeffs)
}

// Factor returns the current factor.
func (m *Multiply) Factor() float64 {
	return m.factor.Value()
}

// SetFactor changes the factor from the next block on.
func (m *Multiply) SetFactor(factor float64) error {
	if err := m.CheckLive(); err != nil {
		return err
	}
	m.factor.SetValue(factor)
	return nil
}
