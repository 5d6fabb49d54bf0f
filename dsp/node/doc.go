// Package node provides the block-rate signal graph that derived nodes are
// built on.
//
// A graph is made of primitive [Unit] vertices. Each unit owns at most one
// input [Port] and exactly one output port and delegates sample work to a
// [Processor]. Anything exposing an input and an output terminal satisfies
// [Node], so a derived node can own a private sub-graph of units and hand
// out the terminals of its first and last unit as its own:
//
//	mul := signal.NewMultiply(ctx, 2)
//	add := signal.NewAdd(ctx, 1)
//	_ = node.ConnectPorts(mul.Output(), add.Input())
//	// expose mul.Input() and add.Output()
//
// # Rendering
//
// [Context.Render] pulls one block from a node's output. Every upstream unit
// is rendered at most once per block; fan-in is summed. Rendering and
// [Context.Update] share one lock, so parameter changes made inside a
// single Update are never observed half-applied.
//
// # Lifecycle
//
// Dispose is idempotent. It does not disconnect peers; callers detach a
// disposed node with [Disconnect] or [DisconnectAll]. Connecting to or
// rendering through a disposed unit fails with [ErrDisposed].
package node
