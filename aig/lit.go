// Copyright 2026 The KCuts Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import "strconv"

// A Lit is a literal in the AIGER convention.  Bit 0 gives the
// polarity (set means negated) and the remaining bits give the
// variable.  Variable v corresponds to vertex index v-1.  The
// literals 0 and 1 denote the constants false and true.
type Lit int32

const (
	// LitNone marks an absent literal, such as the child slots of a
	// primary input.
	LitNone Lit = -1

	// LitFalse and LitTrue are the constant literals.
	LitFalse Lit = 0
	LitTrue  Lit = 1
)

// VertexLit returns the positive literal of the vertex with index i,
// which by the AIGER convention is the even integer 2(i+1).
func VertexLit(i int) Lit {
	return Lit((i + 1) << 1)
}

// Var returns the variable of m.
func (m Lit) Var() int {
	return int(m >> 1)
}

// Vertex returns the 0-based vertex index of m.  The result is
// meaningful only when m references a vertex (m >= 2).
func (m Lit) Vertex() int {
	return int(m>>1) - 1
}

// IsPos indicates whether m has positive polarity.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

// IsConst indicates whether m is one of the constants false or true.
func (m Lit) IsConst() bool {
	return m == LitFalse || m == LitTrue
}

func (m Lit) String() string {
	return strconv.Itoa(int(m))
}
