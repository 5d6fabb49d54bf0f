package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	// InputNodeID is the reserved node ID for the patch input.
	InputNodeID = "_input"
	// OutputNodeID is the reserved node ID for the patch output.
	OutputNodeID = "_output"
)

var (
	// ErrCycle is returned when the connections form a loop.
	ErrCycle = errors.New("patch: graph contains cycle")
	// ErrNoTerminals is returned when a document lacks _input or _output.
	ErrNoTerminals = errors.New("patch: graph needs _input and _output nodes")
)

// document is the serialized form of a patch.
type document struct {
	Nodes       []documentNode       `json:"nodes" yaml:"nodes"`
	Connections []documentConnection `json:"connections" yaml:"connections"`
}

type documentNode struct {
	ID     string `json:"id" yaml:"id"`
	Type   string `json:"type" yaml:"type"`
	Params any    `json:"params" yaml:"params"`
}

type documentConnection struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Edge is a compiled connection.
type Edge struct {
	From string
	To   string
}

// Graph is a parsed patch with adjacency lists and a topological order.
type Graph struct {
	Nodes    map[string]Params
	Incoming map[string][]Edge
	Outgoing map[string][]Edge
	Order    []string
}

// Parse decodes a JSON or YAML patch document and sorts it topologically
// (Kahn's algorithm, ties broken by document order). Nodes without an id,
// non-terminal nodes without a type, and connections naming unknown nodes
// or looping onto themselves are dropped.
func Parse(data []byte) (*Graph, error) {
	var doc document

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("invalid patch json: %w", err)
		}
	} else if err := yaml.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("invalid patch yaml: %w", err)
	}

	return compile(doc)
}

func compile(doc document) (*Graph, error) {
	nodes := make(map[string]Params, len(doc.Nodes))
	ids := make([]string, 0, len(doc.Nodes))

	for _, n := range doc.Nodes {
		if n.ID == "" {
			continue
		}
		if n.Type == "" && !isTerminal(n.ID) {
			continue
		}
		if _, dup := nodes[n.ID]; dup {
			return nil, fmt.Errorf("patch: duplicate node id %q", n.ID)
		}

		nodes[n.ID] = Params{
			ID:   n.ID,
			Type: n.Type,
			Raw:  parseNodeParams(n.Params),
		}
		ids = append(ids, n.ID)
	}

	if _, ok := nodes[InputNodeID]; !ok {
		return nil, ErrNoTerminals
	}
	if _, ok := nodes[OutputNodeID]; !ok {
		return nil, ErrNoTerminals
	}

	incoming := make(map[string][]Edge, len(nodes))
	outgoing := make(map[string][]Edge, len(nodes))
	indegree := make(map[string]int, len(nodes))

	for _, c := range doc.Connections {
		if c.From == "" || c.To == "" || c.From == c.To {
			continue
		}
		if _, ok := nodes[c.From]; !ok {
			continue
		}
		if _, ok := nodes[c.To]; !ok {
			continue
		}

		edge := Edge{From: c.From, To: c.To}
		outgoing[c.From] = append(outgoing[c.From], edge)
		incoming[c.To] = append(incoming[c.To], edge)
		indegree[c.To]++
	}

	queue := make([]string, 0, len(nodes))
	for _, id := range ids {
		if indegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]string, 0, len(nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		order = append(order, id)
		for _, edge := range outgoing[id] {
			indegree[edge.To]--
			if indegree[edge.To] == 0 {
				queue = append(queue, edge.To)
			}
		}
	}

	if len(order) != len(nodes) {
		return nil, ErrCycle
	}

	return &Graph{
		Nodes:    nodes,
		Incoming: incoming,
		Outgoing: outgoing,
		Order:    order,
	}, nil
}

func isTerminal(id string) bool {
	return id == InputNodeID || id == OutputNodeID
}

// parseNodeParams returns the params mapping, or an empty one when the
// document gives none.
func parseNodeParams(raw any) map[string]any {
	params, ok := raw.(map[string]any)
	if !ok || params == nil {
		return map[string]any{}
	}
	return params
}
