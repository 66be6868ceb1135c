// Copyright 2026 The KCuts Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aiger implements ascii and binary readers and writers for
// the AIGER format, restricted to combinational graphs (no latches).
//
// The readers produce frozen *aig.Graph values.
package aiger
