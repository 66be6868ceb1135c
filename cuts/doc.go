// Copyright 2026 The KCuts Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cuts computes priority k-feasible cuts for and-inverter
// graphs.
//
// A cut of a vertex is a set of at most k leaf literals whose
// sub-circuit computes the vertex's function.  Each vertex retains at
// most p cuts, ranked by a fanout-amortized cost; one of them is its
// autocut: the singleton cut naming the vertex itself.  Literal polarity is
// ignored throughout; cut leaves are opaque names, with the
// constants 0 and 1 acting as distinct zero-cost leaves.
package cuts
