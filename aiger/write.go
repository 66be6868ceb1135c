// Copyright 2026 The KCuts Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-air/kcuts/aig"
)

// WriteAscii writes g to w in the ascii AIGER format.  Gates are
// written in vertex index order, which the readers guarantee to be
// topological.
func WriteAscii(w io.Writer, g *aig.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "aag %d %d 0 %d %d\n", g.M(), g.I(), g.O(), g.A())
	for i := 0; i < g.I(); i++ {
		fmt.Fprintf(bw, "%d\n", g.Label(i))
	}
	for _, m := range g.Outputs() {
		fmt.Fprintf(bw, "%d\n", m)
	}
	for i := g.I(); i < g.M(); i++ {
		in1, in2 := g.Ins(i)
		fmt.Fprintf(bw, "%d %d %d\n", g.Label(i), in1, in2)
	}
	writeComment(bw)
	return bw.Flush()
}

// WriteBinary writes g to w in the binary AIGER format, delta-coding
// each gate against its children.
func WriteBinary(w io.Writer, g *aig.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "aig %d %d 0 %d %d\n", g.M(), g.I(), g.O(), g.A())
	for _, m := range g.Outputs() {
		fmt.Fprintf(bw, "%d\n", m)
	}
	for i := g.I(); i < g.M(); i++ {
		in1, in2 := g.Ins(i)
		lit := g.Label(i)
		if err := write7(bw, int(lit-in1)); err != nil {
			return err
		}
		if err := write7(bw, int(in1-in2)); err != nil {
			return err
		}
	}
	writeComment(bw)
	return bw.Flush()
}

func writeComment(w *bufio.Writer) {
	w.WriteString("c\ncreated by kcuts\n")
}

// for binary aiger coding of and deltas; a zero delta still emits
// one byte
func write7(w *bufio.Writer, val int) error {
	for {
		b := byte(val & 0x7f)
		val >>= 7
		if val != 0 {
			b |= 0x80
		}
		if err := w.WriteByte(b); err != nil {
			return err
		}
		if val == 0 {
			return nil
		}
	}
}
