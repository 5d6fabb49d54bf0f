package signal

import (
	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/node"
	"github.com/cwbudde/algo-vecmath"
)

// Add offsets its input by a settable addend: out = in + addend.
type Add struct {
	*node.Unit
	addend  *node.Param
	offsets []float64
}

// NewAdd creates an Add with the given addend.
func NewAdd(ctx *node.Context, addend float64) *Add {
	a := &Add{addend: node.NewParam(addend)}
	a.Unit = node.NewUnit(ctx, "Add", node.ProcessorFunc(a.process))
	return a
}

func (a *Add) process(in, out []float64) {
	a.offsets = core.EnsureLen(a.offsets, len(in))
	a.addend.Fill(a.offsets)
	vecmath.AddBlock(out, in, a.offsets)
}

// Addend returns the current addend.
func (a *Add) Addend() float64 {
	return a.addend.Value()
}

// SetAddend changes the addend from the next block on.
func (a *Add) SetAddend(addend float64) error {
	if err := a.CheckLive(); err != nil {
		return err
	}
	a.addend.SetValue(addend)
	return nil
}
