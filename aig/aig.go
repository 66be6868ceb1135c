// Copyright 2026 The KCuts Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import (
	"errors"
	"fmt"
)

// DanglingVertex indicates a vertex with no consumer, neither an and
// gate nor a primary output.
var DanglingVertex = errors.New("vertex has no outgoing edge (fanout = 0)")

type vertex struct {
	in1, in2 Lit // child literals with in1 >= in2, LitNone for inputs
	fanout   int32
	layer    int32
}

// A Graph is an and-inverter graph: a vertex table holding the
// primary inputs followed by the and gates, plus an output list.  A
// Graph is populated once, by a reader or by hand, then frozen.
// After Freeze it is immutable.
//
// Vertex indices are 0-based: indices 0..I-1 are the primary inputs,
// indices I..M-1 the and gates.  The positive literal of vertex i is
// 2(i+1).
type Graph struct {
	verts  []vertex
	outs   []Lit
	numIn  int
	layers [][]int
	frozen bool
}

// NewGraph creates a graph with numIn primary inputs, room for
// numAnds and gates and numOuts outputs.  The inputs are created
// immediately, on layer 1, with no children.
func NewGraph(numIn, numAnds, numOuts int) *Graph {
	g := &Graph{
		verts: make([]vertex, numIn, numIn+numAnds),
		outs:  make([]Lit, numOuts),
		numIn: numIn}
	for i := 0; i < numIn; i++ {
		g.verts[i] = vertex{in1: LitNone, in2: LitNone, layer: 1}
	}
	for i := range g.outs {
		g.outs[i] = LitNone
	}
	return g
}

// AddAnd appends the and gate with children in1 >= in2 and returns
// its vertex index.  Children referencing vertices have their fanout
// incremented; constant children do not.  The gate's layer is one
// more than the maximal child layer, constants and inputs counting
// as layer 1.
func (g *Graph) AddAnd(in1, in2 Lit) int {
	if g.frozen {
		panic("aig: AddAnd on frozen graph")
	}
	i := len(g.verts)
	layer := int32(1)
	for _, in := range [2]Lit{in1, in2} {
		if in.IsConst() {
			continue
		}
		c := &g.verts[in.Vertex()]
		c.fanout++
		if c.layer > layer {
			layer = c.layer
		}
	}
	g.verts = append(g.verts, vertex{in1: in1, in2: in2, layer: layer + 1})
	return i
}

// SetOutput records literal m as the i'th primary output.  Outputs
// may reference vertices that are not defined yet (the AIGER body
// lists outputs before gates); their fanout contribution is counted
// at Freeze time.
func (g *Graph) SetOutput(i int, m Lit) {
	if g.frozen {
		panic("aig: SetOutput on frozen graph")
	}
	g.outs[i] = m
}

// Freeze counts output fanout, validates fanout and bins the and
// gates by layer.  Every and gate must have at least one consumer; a
// fanout-0 gate yields an error wrapping DanglingVertex.  An unused
// primary input is a harmless leaf and is accepted.
func (g *Graph) Freeze() error {
	for _, m := range g.outs {
		if !m.IsConst() && m != LitNone {
			g.verts[m.Vertex()].fanout++
		}
	}
	for i := g.numIn; i < len(g.verts); i++ {
		if g.verts[i].fanout == 0 {
			return fmt.Errorf("vertex %d: %w", VertexLit(i), DanglingVertex)
		}
	}
	depth := int32(1)
	for i := g.numIn; i < len(g.verts); i++ {
		if l := g.verts[i].layer; l > depth {
			depth = l
		}
	}
	counts := make([]int, depth+1)
	for i := g.numIn; i < len(g.verts); i++ {
		counts[g.verts[i].layer]++
	}
	g.layers = make([][]int, 0, depth-1)
	for l := int32(2); l <= depth; l++ {
		g.layers = append(g.layers, make([]int, 0, counts[l]))
	}
	for i := g.numIn; i < len(g.verts); i++ {
		l := g.verts[i].layer - 2
		g.layers[l] = append(g.layers[l], i)
	}
	g.frozen = true
	return nil
}

// M returns the number of vertices.
func (g *Graph) M() int {
	return len(g.verts)
}

// I returns the number of primary inputs.
func (g *Graph) I() int {
	return g.numIn
}

// A returns the number of and gates.
func (g *Graph) A() int {
	return len(g.verts) - g.numIn
}

// O returns the number of primary outputs.
func (g *Graph) O() int {
	return len(g.outs)
}

// IsInput indicates whether vertex i is a primary input.
func (g *Graph) IsInput(i int) bool {
	return i < g.numIn
}

// Label returns the positive literal of vertex i.
func (g *Graph) Label(i int) Lit {
	return VertexLit(i)
}

// Ins returns the child literals of vertex i.  For a primary input
// both are LitNone.
func (g *Graph) Ins(i int) (Lit, Lit) {
	v := &g.verts[i]
	return v.in1, v.in2
}

// FanoutOf returns the number of consumers of vertex i.
func (g *Graph) FanoutOf(i int) int {
	return int(g.verts[i].fanout)
}

// LayerOf returns the layer of vertex i: 1 for inputs, one more than
// the maximal child layer for and gates.
func (g *Graph) LayerOf(i int) int {
	return int(g.verts[i].layer)
}

// Output returns the literal of the i'th primary output.
func (g *Graph) Output(i int) Lit {
	return g.outs[i]
}

// Outputs returns the output literals.  The result is shared, not
// copied.
func (g *Graph) Outputs() []Lit {
	return g.outs
}

// AndLayers returns the and gate indices binned by layer in ascending
// layer order, starting with layer 2.  Within a bin no vertex depends
// on another.  Only valid after Freeze.
func (g *Graph) AndLayers() [][]int {
	return g.layers
}

// Eval evaluates the graph on the input values vs, where vs[i] holds
// the value of vertex i.  vs must have length M and the first I
// entries set; Eval fills in the rest.  This is the one place literal
// polarity matters: the cut computation treats literals as opaque
// leaf names.
func (g *Graph) Eval(vs []bool) {
	for i := g.numIn; i < len(g.verts); i++ {
		v := &g.verts[i]
		vs[i] = g.evalLit(v.in1, vs) && g.evalLit(v.in2, vs)
	}
}

func (g *Graph) evalLit(m Lit, vs []bool) bool {
	var val bool
	switch {
	case m.IsConst():
		val = m == LitTrue
	case m.IsPos():
		val = vs[m.Vertex()]
	default:
		val = !vs[m.Vertex()]
	}
	return val
}

// Eval64 is like Eval but evaluates 64 stimuli in parallel as the
// bits of a uint64.
func (g *Graph) Eval64(vs []uint64) {
	for i := g.numIn; i < len(g.verts); i++ {
		v := &g.verts[i]
		vs[i] = g.evalLit64(v.in1, vs) & g.evalLit64(v.in2, vs)
	}
}

func (g *Graph) evalLit64(m Lit, vs []uint64) uint64 {
	switch {
	case m == LitFalse:
		return 0
	case m == LitTrue:
		return ^uint64(0)
	case m.IsPos():
		return vs[m.Vertex()]
	default:
		return ^vs[m.Vertex()]
	}
}
