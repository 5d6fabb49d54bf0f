package node

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// Context is the render context shared by every unit of one graph.
// It serializes topology changes, parameter updates, and rendering.
type Context struct {
	cfg    core.ProcessorConfig
	logger *slog.Logger

	mu    sync.Mutex
	block uint64
}

// Option configures a Context.
type Option func(*Context)

// WithConfig applies processor options on top of the default configuration.
func WithConfig(opts ...core.ProcessorOption) Option {
	return func(c *Context) {
		c.cfg = core.ApplyProcessorOptions(opts...)
	}
}

// WithLogger sets the logger used for lifecycle debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewContext creates a render context. Without options it renders at the
// core defaults and discards log output.
func NewContext(opts ...Option) *Context {
	c := &Context{
		cfg:    core.DefaultProcessorConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Config returns the processor configuration.
func (c *Context) Config() core.ProcessorConfig {
	return c.cfg
}

// Logger returns the context logger.
func (c *Context) Logger() *slog.Logger {
	return c.logger
}

// Update runs fn while holding the render lock. fn must not call back into
// Render, Update, Connect, or Dispose on the same context.
func (c *Context) Update(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
}

// Render pulls one block of n's output into out.
func (c *Context) Render(n Node, out []float64) error {
	if n == nil || n.Output() == nil {
		return fmt.Errorf("render: %w: output", ErrNoPort)
	}

	u := n.Output().unit
	if u.ctx != c {
		return fmt.Errorf("render %s: %w", n.Name(), ErrContextMismatch)
	}

	if len(out) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.block++

	buf, err := c.pull(u, len(out))
	if err != nil {
		return fmt.Errorf("render %s: %w", n.Name(), err)
	}

	copy(out, buf)

	return nil
}

// RenderBlock is like Render but allocates a block of the configured size.
func (c *Context) RenderBlock(n Node) ([]float64, error) {
	out := make([]float64, c.cfg.BlockSize)
	if err := c.Render(n, out); err != nil {
		return nil, err
	}
	return out, nil
}
