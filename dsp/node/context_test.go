package node

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-signal/dsp/core"
)

func TestNewContextDefaults(t *testing.T) {
	ctx := NewContext()

	assert.Equal(t, core.DefaultProcessorConfig(), ctx.Config())
	require.NotNil(t, ctx.Logger())
}

func TestNewContextOptions(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := NewContext(
		WithConfig(core.WithSampleRate(44100), core.WithBlockSize(64)),
		WithLogger(logger),
		nil,
	)

	assert.InDelta(t, 44100.0, ctx.Config().SampleRate, 0)
	assert.Equal(t, 64, ctx.Config().BlockSize)

	u, _ := newConst(ctx, "dc", 1)
	u.Dispose()

	assert.Contains(t, logs.String(), "unit disposed")
	assert.Contains(t, logs.String(), "unit=dc")
}

func TestRenderSource(t *testing.T) {
	ctx := NewContext()
	u, _ := newConst(ctx, "dc", 0.25)

	out := make([]float64, 8)
	require.NoError(t, ctx.Render(u, out))

	for i, v := range out {
		assert.InDelta(t, 0.25, v, 1e-15, "sample %d", i)
	}
}

func TestRenderBlockUsesConfiguredSize(t *testing.T) {
	ctx := NewContext(WithConfig(core.WithBlockSize(32)))
	u, _ := newConst(ctx, "dc", 1)

	out, err := ctx.RenderBlock(u)
	require.NoError(t, err)
	assert.Len(t, out, 32)
}

func TestRenderEmptyBlock(t *testing.T) {
	ctx := NewContext()
	u, src := newConst(ctx, "dc", 1)

	require.NoError(t, ctx.Render(u, nil))
	assert.Zero(t, src.calls)
}

func TestRenderSumsFanIn(t *testing.T) {
	ctx := NewContext()
	a, _ := newConst(ctx, "a", 1)
	b, _ := newConst(ctx, "b", 2.5)
	sum := newPass(ctx, "sum")

	require.NoError(t, Connect(a, sum))
	require.NoError(t, Connect(b, sum))

	out := make([]float64, 4)
	require.NoError(t, ctx.Render(sum, out))

	for _, v := range out {
		assert.InDelta(t, 3.5, v, 1e-15)
	}
}

func TestRenderSharedSourceOncePerBlock(t *testing.T) {
	ctx := NewContext()
	src, counter := newConst(ctx, "src", 1)
	left := newGain(ctx, "left", 2)
	right := newGain(ctx, "right", 3)
	sum := newPass(ctx, "sum")

	require.NoError(t, Connect(src, left))
	require.NoError(t, Connect(src, right))
	require.NoError(t, Connect(left, sum))
	require.NoError(t, Connect(right, sum))

	out := make([]float64, 4)
	require.NoError(t, ctx.Render(sum, out))
	assert.InDelta(t, 5.0, out[0], 1e-15)
	assert.Equal(t, 1, counter.calls)

	require.NoError(t, ctx.Render(sum, out))
	assert.Equal(t, 2, counter.calls)
}

func TestRenderDetectsCycle(t *testing.T) {
	ctx := NewContext()
	a := newPass(ctx, "a")
	b := newPass(ctx, "b")

	require.NoError(t, Connect(a, b))
	require.NoError(t, Connect(b, a))

	err := ctx.Render(b, make([]float64, 4))
	require.ErrorIs(t, err, ErrCycle)
}

func TestRenderThroughDisposedUnit(t *testing.T) {
	ctx := NewContext()
	src, _ := newConst(ctx, "src", 1)
	sink := newPass(ctx, "sink")
	require.NoError(t, Connect(src, sink))

	src.Dispose()

	err := ctx.Render(sink, make([]float64, 4))
	require.ErrorIs(t, err, ErrDisposed)

	require.NoError(t, Disconnect(src, sink))
	require.NoError(t, ctx.Render(sink, make([]float64, 4)))
}

func TestRenderForeignContext(t *testing.T) {
	u, _ := newConst(NewContext(), "dc", 1)

	err := NewContext().Render(u, make([]float64, 2))
	require.ErrorIs(t, err, ErrContextMismatch)
}

func TestRenderNilNode(t *testing.T) {
	err := NewContext().Render(nil, make([]float64, 2))
	require.ErrorIs(t, err, ErrNoPort)
}

func TestUpdateRuns(t *testing.T) {
	ctx := NewContext()
	p := NewParam(0)

	ctx.Update(func() { p.SetValue(7) })

	assert.InDelta(t, 7.0, p.Value(), 0)
}
