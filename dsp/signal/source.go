package signal

import (
	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/node"
)

// Signal is a constant source.
type Signal struct {
	*node.Unit
	value *node.Param
}

// NewSignal creates a source emitting value on every sample.
func NewSignal(ctx *node.Context, value float64) *Signal {
	s := &Signal{value: node.NewParam(value)}
	s.Unit = node.NewSourceUnit(ctx, "Signal", node.ProcessorFunc(s.process))
	return s
}

func (s *Signal) process(_, out []float64) {
	s.value.Fill(out)
}

// Value returns the emitted value.
func (s *Signal) Value() float64 {
	return s.value.Value()
}

// SetValue changes the emitted value from the next block on.
func (s *Signal) SetValue(value float64) error {
	if err := s.CheckLive(); err != nil {
		return err
	}
	s.value.SetValue(value)
	return nil
}

// BufferSource plays a fixed sample buffer once, then emits silence.
type BufferSource struct {
	*node.Unit
	samples []float64
	pos     int
}

// NewBufferSource creates a source playing a copy of samples.
func NewBufferSource(ctx *node.Context, samples []float64) *BufferSource {
	b := &BufferSource{samples: append([]float64(nil), samples...)}
	b.Unit = node.NewSourceUnit(ctx, "BufferSource", node.ProcessorFunc(b.process))
	return b
}

func (b *BufferSource) process(_, out []float64) {
	n := copy(out, b.samples[b.pos:])
	b.pos += n
	core.Zero(out[n:])
}

// Reset rewinds playback to the first sample.
func (b *BufferSource) Reset() {
	b.Context().Update(func() { b.pos = 0 })
}

// Len returns the number of buffered samples.
func (b *BufferSource) Len() int {
	return len(b.samples)
}
