// Copyright 2026 The KCuts Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

var usage = `usage: %s [options] <file>

%s reads an AIG in the ascii ("aag") or binary ("aig") AIGER format
and computes the priority k-cuts of every vertex.  With -d, the cuts
are printed to standard output, one block per vertex:

	v[6] cuts:
	  {'cut':{2,4},'cost':0}

Options:

`
