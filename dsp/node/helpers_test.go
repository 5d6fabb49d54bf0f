package node

import "github.com/cwbudde/algo-signal/dsp/core"

// constSource emits a fixed value and counts how often it renders.
type constSource struct {
	value float64
	calls int
}

func (s *constSource) Process(_, out []float64) {
	s.calls++
	core.Fill(out, s.value)
}

func newConst(ctx *Context, name string, value float64) (*Unit, *constSource) {
	src := &constSource{value: value}
	return NewSourceUnit(ctx, name, src), src
}

func newPass(ctx *Context, name string) *Unit {
	return NewUnit(ctx, name, ProcessorFunc(func(in, out []float64) {
		copy(out, in)
	}))
}

func newGain(ctx *Context, name string, gain float64) *Unit {
	return NewUnit(ctx, name, ProcessorFunc(func(in, out []float64) {
		for i := range out {
			out[i] = in[i] * gain
		}
	}))
}
