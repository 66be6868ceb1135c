// Copyright 2026 The KCuts Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cuts

import (
	"strings"
	"testing"

	"github.com/go-air/kcuts/aig"
	"github.com/go-air/kcuts/aiger"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, in string) *aig.Graph {
	t.Helper()
	g, err := aiger.ReadAscii(strings.NewReader(in))
	require.NoError(t, err)
	return g
}

// sameSet reports set equality of two input rows.
func sameSet(a, b []aig.Lit) bool {
	if len(a) != len(b) {
		return false
	}
	for _, m := range a {
		found := false
		for _, n := range b {
			if n == m {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// requireCut asserts that vertex v holds a cut with the given inputs
// (as a set) and cost.
func requireCut(t *testing.T, tbl *Table, v int, cost float64, set ...aig.Lit) {
	t.Helper()
	found := false
	tbl.Cuts(v, func(j int, c float64, row []aig.Lit) {
		if found || !sameSet(row, set) {
			return
		}
		require.Equal(t, cost, c, "cut %v of vertex %d", set, v)
		found = true
	})
	if !found {
		t.Fatalf("vertex %d has no cut %v", v, set)
	}
}

// a single gate
func TestEngineSingleGate(t *testing.T) {
	g := parse(t, "aag 3 2 0 1 1\n2\n4\n6\n6 4 2\n")
	tbl, err := Compute(g, 2, 2)
	require.NoError(t, err)
	requireCut(t, tbl, 2, 0, 2, 4)
	requireCut(t, tbl, 2, 1, 6)
	require.Equal(t, 2, tbl.Len(2))
	require.Equal(t, 0, tbl.Winner(2))
	require.Equal(t, 0.0, tbl.WinnerCost(2))
}

// two levels whose children share the cut {2,4}
func TestEngineTwoLevel(t *testing.T) {
	g := parse(t, "aag 5 2 0 1 3\n2\n4\n10\n6 4 2\n8 4 2\n10 8 6\n")
	tbl, err := Compute(g, 3, 2)
	require.NoError(t, err)
	requireCut(t, tbl, 4, 0, 2, 4)
	requireCut(t, tbl, 4, 1, 10)
	require.Equal(t, 0.0, tbl.WinnerCost(4))
}

// the width filter drops the oversize products
func TestEngineWidthFilter(t *testing.T) {
	g := parse(t, "aag 5 2 0 1 3\n2\n4\n10\n6 4 2\n8 4 2\n10 8 6\n")
	tbl, err := Compute(g, 2, 2)
	require.NoError(t, err)
	requireCut(t, tbl, 4, 0, 2, 4)
	requireCut(t, tbl, 4, 1, 10)
	for v := 0; v < tbl.NumVerts(); v++ {
		for j := 0; j < tbl.P(); j++ {
			if tbl.Cost(v, j) >= 0 {
				require.LessOrEqual(t, len(tbl.Row(v, j)), 2)
			}
		}
	}
}

// a full cut list evicts the costliest candidate,
// and the autocut comes back in by replacing the loser
func TestEngineEviction(t *testing.T) {
	g := parse(t, "aag 7 4 0 1 3\n2\n4\n6\n8\n14\n10 4 2\n12 8 6\n14 12 10\n")
	tbl, err := Compute(g, 3, 2)
	require.NoError(t, err)
	// products of vertex 14: {6,8,10} and {2,4,12} at cost 1 fill both
	// slots, {10,12} at cost 2 is discarded; the autocut then replaces
	// the loser (highest index at the tied cost)
	requireCut(t, tbl, 6, 1, 6, 8, 10)
	requireCut(t, tbl, 6, 2, 14)
	require.Equal(t, 2, tbl.Len(6))
	require.Equal(t, 0, tbl.Winner(6))
}

// a constant child acts as a distinct zero-cost leaf named by its
// literal
func TestEngineConstChild(t *testing.T) {
	g := parse(t, "aag 2 1 0 1 1\n2\n4\n4 2 1\n")
	tbl, err := Compute(g, 2, 2)
	require.NoError(t, err)
	requireCut(t, tbl, 1, 0, 2, 1)
	requireCut(t, tbl, 1, 1, 4)
}

func TestEngineFanoutShares(t *testing.T) {
	// vertex 6 feeds both 8 and 10 as well as an output: fanout 3
	g := parse(t, "aag 5 2 0 3 3\n2\n4\n6\n8\n10\n6 4 2\n8 6 2\n10 6 4\n")
	require.Equal(t, 3, g.FanoutOf(2))
	tbl, err := Compute(g, 2, 3)
	require.NoError(t, err)
	requireCut(t, tbl, 2, 0, 2, 4)
	requireCut(t, tbl, 2, 1.0/3.0, 6)
	// cost of {6,2} at vertex 8: (autocut(6) + trivial(2)) / fanout(8)
	requireCut(t, tbl, 3, 1.0/3.0, 6, 2)
}

// white-box checks of the engine helpers

func TestEngineUnion(t *testing.T) {
	g := parse(t, "aag 3 2 0 1 1\n2\n4\n6\n6 4 2\n")
	e := newEngine(g, NewTable(g.M(), 3, 2))
	u := e.union([]aig.Lit{2, 4}, []aig.Lit{4, 6})
	require.Equal(t, []aig.Lit{2, 4, 6}, u)
	u = e.union([]aig.Lit{2}, []aig.Lit{2})
	require.Equal(t, []aig.Lit{2}, u)
	u = e.union(nil, []aig.Lit{8})
	require.Equal(t, []aig.Lit{8}, u)
}

func TestEngineDuplicate(t *testing.T) {
	g := parse(t, "aag 3 2 0 1 1\n2\n4\n6\n6 4 2\n")
	tbl := NewTable(g.M(), 3, 2)
	e := newEngine(g, tbl)
	tbl.Put(2, 0, 0.5, []aig.Lit{2, 4})
	require.True(t, e.duplicate(2, []aig.Lit{4, 2}))
	require.False(t, e.duplicate(2, []aig.Lit{2}))
	require.False(t, e.duplicate(2, []aig.Lit{2, 6}))
	// a subset of a stored cut is not a duplicate
	tbl.Put(2, 1, 0.5, []aig.Lit{2, 4, 6})
	require.False(t, e.duplicate(2, []aig.Lit{2, 6}))
}

func TestEnginePlacement(t *testing.T) {
	g := parse(t, "aag 3 2 0 1 1\n2\n4\n6\n6 4 2\n")
	tbl := NewTable(g.M(), 2, 2)
	e := newEngine(g, tbl)
	require.True(t, e.place(2, 3, []aig.Lit{2}))
	require.True(t, e.place(2, 5, []aig.Lit{4}))
	// both slots cheaper: discarded
	require.False(t, e.place(2, 7, []aig.Lit{6}))
	// overwrites the first strictly worse slot
	require.True(t, e.place(2, 4, []aig.Lit{6}))
	require.Equal(t, 3.0, tbl.Cost(2, 0))
	require.Equal(t, 4.0, tbl.Cost(2, 1))
}

func TestEngineWinnerLoser(t *testing.T) {
	g := parse(t, "aag 3 2 0 1 1\n2\n4\n6\n6 4 2\n")
	tbl := NewTable(g.M(), 2, 3)
	e := newEngine(g, tbl)
	tbl.Put(2, 0, 2, []aig.Lit{2})
	tbl.Put(2, 1, 1, []aig.Lit{4})
	tbl.Put(2, 2, 2, []aig.Lit{6})
	wj, wc := e.winner(2)
	require.Equal(t, 1, wj)
	require.Equal(t, 1.0, wc)
	// loser ties break toward the highest index
	require.Equal(t, 2, e.loser(2))
	// winner ties break toward the lowest index
	tbl.Put(2, 1, 2, []aig.Lit{4})
	wj, _ = e.winner(2)
	require.Equal(t, 0, wj)
}
