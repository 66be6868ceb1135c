// Copyright 2026 The KCuts Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cuts

import (
	"errors"

	"github.com/go-air/kcuts/aig"
	"github.com/go-air/kcuts/logger"
)

// ParamTooSmall indicates a k or p below the supported minimum of 2.
var ParamTooSmall = errors.New("minimal value for k and p is 2")

// Compute computes the priority k-cuts of every vertex of g, with at
// most k inputs per cut and p cuts retained per vertex.  It iterates
// the graph's layers in ascending order; within a layer there are no
// dependencies, so any order would do.
func Compute(g *aig.Graph, k, p int) (*Table, error) {
	if k < 2 || p < 2 {
		return nil, ParamTooSmall
	}
	log := logger.Logger()
	t := NewTable(g.M(), k, p)
	e := newEngine(g, t)
	e.initInputs()
	for l, layer := range g.AndLayers() {
		for _, v := range layer {
			if err := e.computeVertex(v); err != nil {
				return nil, err
			}
		}
		log.Debug().Int("layer", l+2).Int("vertices", len(layer)).Msg("layer sealed")
	}
	return t, nil
}

// ComputeFromOutputs computes the same table by an explicit-stack
// post-order walk from each output literal, memoized on the winner
// sentinel.  The recurrence is functional in the child cuts, so the
// result is identical to Compute's.
func ComputeFromOutputs(g *aig.Graph, k, p int) (*Table, error) {
	if k < 2 || p < 2 {
		return nil, ParamTooSmall
	}
	t := NewTable(g.M(), k, p)
	e := newEngine(g, t)
	e.initInputs()
	var stk []int
	for _, m := range g.Outputs() {
		if m.IsConst() {
			continue
		}
		stk = append(stk[:0], m.Vertex())
		for len(stk) > 0 {
			v := stk[len(stk)-1]
			if t.Winner(v) >= 0 {
				stk = stk[:len(stk)-1]
				continue
			}
			in1, in2 := g.Ins(v)
			if c, ok := pendingChild(t, in1); ok {
				stk = append(stk, c)
				continue
			}
			if c, ok := pendingChild(t, in2); ok {
				stk = append(stk, c)
				continue
			}
			if err := e.computeVertex(v); err != nil {
				return nil, err
			}
			stk = stk[:len(stk)-1]
		}
	}
	return t, nil
}

func pendingChild(t *Table, m aig.Lit) (int, bool) {
	if m.IsConst() {
		return 0, false
	}
	c := m.Vertex()
	return c, t.Winner(c) < 0
}
