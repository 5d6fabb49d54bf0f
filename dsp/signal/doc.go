// Package signal provides the primitive arithmetic nodes of the graph
// ([Signal], [Multiply], [Add], [BufferSource]) and [Scale], a derived node
// that maps a normalized input onto an arbitrary output range by owning a
// private Multiply -> Add sub-graph.
//
// All nodes render through a [node.Context]:
//
//	ctx := node.NewContext()
//	scale := signal.NewScale(ctx, signal.WithRange(50, 100))
//	src := signal.NewSignal(ctx, 0.5)
//	_ = node.Connect(src, scale)
//	out, _ := ctx.RenderBlock(scale) // every sample is 75
package signal
