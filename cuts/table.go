// Copyright 2026 The KCuts Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cuts

import "github.com/go-air/kcuts/aig"

// sentinels: an empty slot carries cost -1, an unused input position
// the literal -1.
const (
	emptyCost = -1.0
	noLit     = aig.Lit(-1)
)

// A Table stores the cuts of every vertex in two flat arenas: one
// cost per (vertex, slot) and one row of k input literals per slot.
// Slot (v, j) is free iff its cost is the sentinel.  There is no
// per-cut allocation.
type Table struct {
	k, p    int
	costs   []float64
	inputs  []aig.Lit
	winners []int32
}

// NewTable creates an empty table for m vertices with p slots per
// vertex and k inputs per slot.
func NewTable(m, k, p int) *Table {
	t := &Table{
		k:       k,
		p:       p,
		costs:   make([]float64, m*p),
		inputs:  make([]aig.Lit, m*p*k),
		winners: make([]int32, m)}
	for i := range t.costs {
		t.costs[i] = emptyCost
	}
	for i := range t.inputs {
		t.inputs[i] = noLit
	}
	for i := range t.winners {
		t.winners[i] = -1
	}
	return t
}

// K returns the maximal number of inputs per cut.
func (t *Table) K() int {
	return t.k
}

// P returns the maximal number of cuts per vertex.
func (t *Table) P() int {
	return t.p
}

// NumVerts returns the number of vertices the table covers.
func (t *Table) NumVerts() int {
	return len(t.winners)
}

// Clear frees all p slots of vertex v.
func (t *Table) Clear(v int) {
	for j := 0; j < t.p; j++ {
		t.costs[v*t.p+j] = emptyCost
	}
	row := t.inputs[v*t.p*t.k : (v+1)*t.p*t.k]
	for i := range row {
		row[i] = noLit
	}
	t.winners[v] = -1
}

// Cost returns the cost of slot (v, j), the sentinel -1 if the slot
// is free.
func (t *Table) Cost(v, j int) float64 {
	return t.costs[v*t.p+j]
}

// Row returns the input literals of slot (v, j), trimmed of unused
// positions.  The result aliases the table.
func (t *Table) Row(v, j int) []aig.Lit {
	row := t.inputs[(v*t.p+j)*t.k : (v*t.p+j+1)*t.k]
	n := 0
	for n < t.k && row[n] != noLit {
		n++
	}
	return row[:n]
}

// Put overwrites slot (v, j) with the given cost and input set,
// padding unused positions with the sentinel.
func (t *Table) Put(v, j int, cost float64, set []aig.Lit) {
	t.costs[v*t.p+j] = cost
	row := t.inputs[(v*t.p+j)*t.k : (v*t.p+j+1)*t.k]
	n := copy(row, set)
	for ; n < t.k; n++ {
		row[n] = noLit
	}
}

// InitInput gives input vertex v its single trivial cut: cost 0,
// inputs {2(v+1)}.
func (t *Table) InitInput(v int) {
	t.Clear(v)
	t.Put(v, 0, 0, []aig.Lit{aig.VertexLit(v)})
	t.winners[v] = 0
}

// Cuts calls f for each non-empty slot of vertex v in slot order,
// passing the slot index, the cost and the trimmed input row.  The
// row aliases the table.
func (t *Table) Cuts(v int, f func(j int, cost float64, row []aig.Lit)) {
	for j := 0; j < t.p; j++ {
		c := t.costs[v*t.p+j]
		if c < 0 {
			continue
		}
		f(j, c, t.Row(v, j))
	}
}

// Len returns the number of non-empty slots of vertex v.
func (t *Table) Len(v int) int {
	n := 0
	for j := 0; j < t.p; j++ {
		if t.costs[v*t.p+j] >= 0 {
			n++
		}
	}
	return n
}

// Winner returns the slot index of the cheapest cut of v, -1 if v
// has not been processed.
func (t *Table) Winner(v int) int {
	return int(t.winners[v])
}

// WinnerCost returns the cost of v's winner cut.
func (t *Table) WinnerCost(v int) float64 {
	return t.Cost(v, int(t.winners[v]))
}
