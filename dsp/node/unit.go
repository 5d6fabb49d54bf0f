package node

import (
	"fmt"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Processor renders one block. in holds the sum of every source connected
// to the unit's input (zeros when nothing is connected or the unit has no
// input). len(in) == len(out).
type Processor interface {
	Process(in, out []float64)
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(in, out []float64)

// Process calls f(in, out).
func (f ProcessorFunc) Process(in, out []float64) { f(in, out) }

// Node is anything with graph terminals. Source nodes return a nil Input.
type Node interface {
	Name() string
	Input() *Port
	Output() *Port
	Dispose()
}

// Unit is a primitive graph vertex.
type Unit struct {
	ctx  *Context
	name string
	proc Processor

	in  *Port
	out *Port

	disposed bool

	mix      []float64
	buf      []float64
	rendered uint64
	visiting bool
}

// NewUnit creates a unit with one input and one output port.
func NewUnit(ctx *Context, name string, proc Processor) *Unit {
	u := newUnit(ctx, name, proc)
	u.in = &Port{unit: u, dir: DirInput}
	return u
}

// NewSourceUnit creates a unit with an output port only.
func NewSourceUnit(ctx *Context, name string, proc Processor) *Unit {
	return newUnit(ctx, name, proc)
}

func newUnit(ctx *Context, name string, proc Processor) *Unit {
	if ctx == nil {
		panic("node: nil context")
	}
	if proc == nil {
		panic("node: nil processor")
	}
	u := &Unit{ctx: ctx, name: name, proc: proc}
	u.out = &Port{unit: u, dir: DirOutput}
	return u
}

// Name returns the unit name.
func (u *Unit) Name() string { return u.name }

// Input returns the input port, or nil for a source unit.
func (u *Unit) Input() *Port { return u.in }

// Output returns the output port.
func (u *Unit) Output() *Port { return u.out }

// Context returns the render context the unit belongs to.
func (u *Unit) Context() *Context { return u.ctx }

// Disposed reports whether Dispose has been called.
func (u *Unit) Disposed() bool {
	u.ctx.mu.Lock()
	defer u.ctx.mu.Unlock()
	return u.disposed
}

// Dispose releases the unit's buffers. Calling it again is a no-op.
// Edges to peers stay in place.
func (u *Unit) Dispose() {
	u.ctx.mu.Lock()
	defer u.ctx.mu.Unlock()

	if u.disposed {
		return
	}

	u.disposed = true
	u.mix = nil
	u.buf = nil

	u.ctx.logger.Debug("unit disposed", "unit", u.name)
}

// CheckLive returns ErrDisposed once the unit has been disposed.
func (u *Unit) CheckLive() error {
	if u.Disposed() {
		return fmt.Errorf("%s: %w", u.name, ErrDisposed)
	}
	return nil
}

// pull renders u for the current block. The caller holds ctx.mu.
func (c *Context) pull(u *Unit, n int) ([]float64, error) {
	if u.disposed {
		return nil, fmt.Errorf("%s: %w", u.name, ErrDisposed)
	}

	if u.rendered == c.block && len(u.buf) == n {
		return u.buf, nil
	}

	if u.visiting {
		return nil, fmt.Errorf("%s: %w", u.name, ErrCycle)
	}

	u.visiting = true
	defer func() { u.visiting = false }()

	u.mix = core.EnsureLen(u.mix, n)
	core.Zero(u.mix)

	if u.in != nil {
		for _, src := range u.in.peers {
			block, err := c.pull(src.unit, n)
			if err != nil {
				return nil, err
			}
			vecmath.AddBlockInPlace(u.mix, block)
		}
	}

	u.buf = core.EnsureLen(u.buf, n)
	u.proc.Process(u.mix, u.buf)
	u.rendered = c.block

	return u.buf, nil
}
