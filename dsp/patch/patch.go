package patch

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-signal/dsp/node"
	"github.com/cwbudde/algo-signal/dsp/signal"
)

// Patch is a built graph. It owns every node it created and exposes only
// its _input and _output terminals.
type Patch struct {
	ctx   *node.Context
	graph *Graph

	input  *signal.Add
	output *signal.Add
	nodes  map[string]node.Node

	disposed bool
}

// Load reads a patch file and builds it with the default registry.
func Load(ctx *node.Context, path string) (*Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}

	g, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return Build(ctx, DefaultRegistry(), g)
}

// Build instantiates every node of g and wires the connections. On error
// all nodes created so far are disposed.
func Build(ctx *node.Context, reg *Registry, g *Graph) (_ *Patch, err error) {
	p := &Patch{
		ctx:    ctx,
		graph:  g,
		input:  signal.NewAdd(ctx, 0),
		output: signal.NewAdd(ctx, 0),
		nodes:  make(map[string]node.Node, len(g.Nodes)),
	}
	p.nodes[InputNodeID] = p.input
	p.nodes[OutputNodeID] = p.output

	defer func() {
		if err != nil {
			p.Dispose()
		}
	}()

	for _, id := range g.Order {
		if isTerminal(id) {
			continue
		}

		params := g.Nodes[id]

		factory := reg.Lookup(params.Type)
		if factory == nil {
			return nil, fmt.Errorf("patch: node %q: %w: %s (known: %s)", id, ErrUnknownNode, params.Type, strings.Join(reg.Types(), ", "))
		}

		n, err := factory(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("patch: build node %q (%s): %w", id, params.Type, err)
		}

		p.nodes[id] = n
	}

	edges := 0
	for _, id := range g.Order {
		for _, e := range g.Outgoing[id] {
			if err := node.Connect(p.nodes[e.From], p.nodes[e.To]); err != nil {
				return nil, fmt.Errorf("patch: connect %q -> %q: %w", e.From, e.To, err)
			}
			edges++
		}
	}

	ctx.Logger().Debug("patch built", "nodes", len(p.nodes), "edges", edges)

	return p, nil
}

// Name returns "Patch".
func (p *Patch) Name() string { return "Patch" }

// Input returns the _input terminal.
func (p *Patch) Input() *node.Port { return p.input.Input() }

// Output returns the _output terminal.
func (p *Patch) Output() *node.Port { return p.output.Output() }

// Graph returns the compiled graph the patch was built from.
func (p *Patch) Graph() *Graph { return p.graph }

// Node returns the node built for id.
func (p *Patch) Node(id string) (node.Node, bool) {
	n, ok := p.nodes[id]
	return n, ok
}

// Dispose releases every owned node. It is safe to call more than once.
func (p *Patch) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true

	for _, n := range p.nodes {
		n.Dispose()
	}

	p.ctx.Logger().Debug("patch disposed", "nodes", len(p.nodes))
}
