package node

import "slices"

// Direction tells whether a port receives or emits signal.
type Direction int

const (
	DirInput Direction = iota
	DirOutput
)

func (d Direction) String() string {
	if d == DirOutput {
		return "out"
	}
	return "in"
}

// Port is an opaque terminal of a unit. A port keeps its identity for the
// lifetime of the unit that owns it.
type Port struct {
	unit  *Unit
	dir   Direction
	peers []*Port
}

// Direction returns whether p is an input or an output.
func (p *Port) Direction() Direction {
	return p.dir
}

// Name returns "<unit>.in" or "<unit>.out".
func (p *Port) Name() string {
	return p.unit.name + "." + p.dir.String()
}

// NumConnections returns the number of edges attached to p.
func (p *Port) NumConnections() int {
	p.unit.ctx.mu.Lock()
	defer p.unit.ctx.mu.Unlock()
	return len(p.peers)
}

// ConnectedTo reports whether an edge joins p and other, in either direction.
func (p *Port) ConnectedTo(other *Port) bool {
	if other == nil {
		return false
	}
	p.unit.ctx.mu.Lock()
	defer p.unit.ctx.mu.Unlock()
	return slices.Contains(p.peers, other)
}

func (p *Port) detach(peer *Port) {
	p.peers = slices.DeleteFunc(p.peers, func(q *Port) bool { return q == peer })
}
