// Copyright 2026 The KCuts Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aig provides an and-inverter graph representation for
// combinational circuits, with AIGER literal conventions, fanout
// accounting and topological layering.
package aig
