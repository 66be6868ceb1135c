// Copyright 2026 The KCuts Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cuts

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/go-air/kcuts/aig"
)

// Fprint writes the non-empty cuts of vertex v to w, one block per
// vertex:
//
//	v[6] cuts:
//	  {'cut':{2,4},'cost':0.5}
func Fprint(w io.Writer, t *Table, v int) error {
	bw := bufio.NewWriter(w)
	fprint(bw, t, v)
	return bw.Flush()
}

// FprintAll writes the cut blocks of every vertex in index order.
func FprintAll(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	for v := 0; v < t.NumVerts(); v++ {
		fprint(bw, t, v)
	}
	return bw.Flush()
}

func fprint(w *bufio.Writer, t *Table, v int) {
	fmt.Fprintf(w, "v[%d] cuts:\n", 2*(v+1))
	t.Cuts(v, func(j int, cost float64, row []aig.Lit) {
		w.WriteString("  {'cut':{")
		for i, m := range row {
			if i > 0 {
				w.WriteByte(',')
			}
			w.WriteString(m.String())
		}
		w.WriteString("},'cost':")
		w.WriteString(strconv.FormatFloat(cost, 'g', -1, 64))
		w.WriteString("}\n")
	})
}
