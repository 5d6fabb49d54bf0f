package node

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// Param is a scalar node parameter. Changes take effect on the next rendered
// block; there is no ramping.
type Param struct {
	bits atomic.Uint64
}

// NewParam returns a Param holding value.
func NewParam(value float64) *Param {
	p := &Param{}
	p.SetValue(value)
	return p
}

// Value returns the current value.
func (p *Param) Value() float64 {
	return math.Float64frombits(p.bits.Load())
}

// SetValue replaces the current value. Non-finite values are stored as-is.
func (p *Param) SetValue(value float64) {
	p.bits.Store(math.Float64bits(value))
}

// Fill writes the current value into every element of buf.
func (p *Param) Fill(buf []float64) {
	core.Fill(buf, p.Value())
}
