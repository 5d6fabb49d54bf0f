// Package patch builds node graphs from declarative documents.
//
// A patch lists nodes and the connections between them, in JSON or YAML:
//
//	nodes:
//	  - {id: _input}
//	  - {id: lfo-range, type: scale, params: {outputMin: 200, outputMax: 800}}
//	  - {id: _output}
//	connections:
//	  - {from: _input, to: lfo-range}
//	  - {from: lfo-range, to: _output}
//
// The reserved ids "_input" and "_output" are the patch terminals. A built
// [Patch] is itself a [node.Node]: sources connect to its input terminal and
// its output terminal feeds downstream nodes, while the nodes in between
// stay private to the patch.
package patch
