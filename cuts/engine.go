// Copyright 2026 The KCuts Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cuts

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/go-air/kcuts/aig"
)

// Errors raised by the engine.  Both indicate graphs or traversal
// orders that the builders rule out.
var (
	FanoutZero      = errors.New("vertex has fanout 0")
	MissingChildCut = errors.New("child vertex has no sealed cut list")
)

// synthetic single-cut rows for the constant children
var constRows = [2][1]aig.Lit{{aig.LitFalse}, {aig.LitTrue}}

// engine computes the cut list of one vertex from the sealed cut
// lists of its children.
type engine struct {
	g      *aig.Graph
	t      *Table
	sealed *bitset.BitSet
	buf    []aig.Lit
}

func newEngine(g *aig.Graph, t *Table) *engine {
	return &engine{
		g:      g,
		t:      t,
		sealed: bitset.New(uint(g.M())),
		buf:    make([]aig.Lit, 0, 2*t.K())}
}

// initInputs seals the trivial cut of every primary input.
func (e *engine) initInputs() {
	for i := 0; i < e.g.I(); i++ {
		e.t.InitInput(i)
		e.sealed.Set(uint(i))
	}
}

// computeVertex fills the cut list of and vertex v: cartesian
// product of the child cut lists, width filter, duplicate
// suppression, cost-ordered insertion, then the autocut.  On return
// v is sealed.
func (e *engine) computeVertex(v int) error {
	fan := e.g.FanoutOf(v)
	if fan == 0 {
		return fmt.Errorf("vertex %d: %w", e.g.Label(v), FanoutZero)
	}
	in1, in2 := e.g.Ins(v)
	if err := e.checkChild(in1); err != nil {
		return err
	}
	if err := e.checkChild(in2); err != nil {
		return err
	}
	e.t.Clear(v)
	p := e.t.P()
	for j := 0; j < p; j++ {
		cost1, row1, ok := e.childCut(in1, j)
		if !ok {
			continue
		}
		for z := 0; z < p; z++ {
			cost2, row2, ok := e.childCut(in2, z)
			if !ok {
				continue
			}
			prod := e.union(row1, row2)
			if len(prod) > e.t.K() {
				continue
			}
			cost := (cost1 + cost2) / float64(fan)
			if e.duplicate(v, prod) {
				continue
			}
			e.place(v, cost, prod)
		}
	}
	// autocut: the vertex itself, one fanout share above the winner
	_, winnerCost := e.winner(v)
	autoCost := winnerCost + 1/float64(fan)
	auto := []aig.Lit{e.g.Label(v)}
	if !e.place(v, autoCost, auto) {
		e.t.Put(v, e.loser(v), autoCost, auto)
	}
	wj, _ := e.winner(v)
	e.t.winners[v] = int32(wj)
	e.sealed.Set(uint(v))
	return nil
}

// checkChild verifies that a non-constant child has been sealed with
// at least one cut.
func (e *engine) checkChild(m aig.Lit) error {
	if m.IsConst() {
		return nil
	}
	c := m.Vertex()
	if !e.sealed.Test(uint(c)) || e.t.Len(c) == 0 {
		return fmt.Errorf("vertex %d: %w", e.g.Label(c), MissingChildCut)
	}
	return nil
}

// childCut looks up slot j of child literal m.  A constant child
// contributes exactly one cut: cost 0 with the constant's literal as
// its single input.
func (e *engine) childCut(m aig.Lit, j int) (float64, []aig.Lit, bool) {
	if m.IsConst() {
		if j != 0 {
			return 0, nil, false
		}
		return 0, constRows[m][:], true
	}
	c := m.Vertex()
	cost := e.t.Cost(c, j)
	if cost < 0 {
		return 0, nil, false
	}
	return cost, e.t.Row(c, j), true
}

// union merges two input rows as a set, left row first.  The result
// aliases the engine's scratch buffer and is valid until the next
// call.
func (e *engine) union(row1, row2 []aig.Lit) []aig.Lit {
	buf := append(e.buf[:0], row1...)
	for _, m := range row2 {
		found := false
		for _, n := range buf {
			if n == m {
				found = true
				break
			}
		}
		if !found {
			buf = append(buf, m)
		}
	}
	e.buf = buf
	return buf
}

// duplicate reports whether some stored cut of v equals set as a
// set.
func (e *engine) duplicate(v int, set []aig.Lit) bool {
	for j := 0; j < e.t.P(); j++ {
		if e.t.Cost(v, j) < 0 {
			continue
		}
		row := e.t.Row(v, j)
		if len(row) != len(set) {
			continue
		}
		match := true
		for _, m := range set {
			found := false
			for _, n := range row {
				if n == m {
					found = true
					break
				}
			}
			if !found {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// place writes the cut into the first slot that is free or strictly
// worse.  It reports whether a slot qualified.
func (e *engine) place(v int, cost float64, set []aig.Lit) bool {
	for j := 0; j < e.t.P(); j++ {
		c := e.t.Cost(v, j)
		if c < 0 || c > cost {
			e.t.Put(v, j, cost, set)
			return true
		}
	}
	return false
}

// winner returns the minimum-cost non-empty slot of v, ties broken
// by the lowest index.  Returns (-1, 0) when every slot is free.
func (e *engine) winner(v int) (int, float64) {
	wj, wc := -1, 0.0
	for j := 0; j < e.t.P(); j++ {
		c := e.t.Cost(v, j)
		if c < 0 {
			continue
		}
		if wj == -1 || c < wc {
			wj, wc = j, c
		}
	}
	return wj, wc
}

// loser returns the maximum-cost slot of v, ties broken by the
// highest index.  Only called when every slot is occupied.
func (e *engine) loser(v int) int {
	lj, lc := 0, e.t.Cost(v, 0)
	for j := 1; j < e.t.P(); j++ {
		if c := e.t.Cost(v, j); c >= lc {
			lj, lc = j, c
		}
	}
	return lj
}
