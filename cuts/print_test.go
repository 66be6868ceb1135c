// Copyright 2026 The KCuts Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cuts

import (
	"bytes"
	"testing"

	"github.com/go-air/kcuts/aig"
)

func TestFprint(t *testing.T) {
	g := parse(t, "aag 3 2 0 1 1\n2\n4\n6\n6 4 2\n")
	tbl, err := Compute(g, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Fprint(&buf, tbl, 2); err != nil {
		t.Fatal(err)
	}
	want := "v[6] cuts:\n  {'cut':{4,2},'cost':0}\n  {'cut':{6},'cost':1}\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}

func TestFprintAll(t *testing.T) {
	g := parse(t, "aag 2 2 0 1 0\n2\n4\n2\n")
	tbl, err := Compute(g, 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FprintAll(&buf, tbl); err != nil {
		t.Fatal(err)
	}
	want := "v[2] cuts:\n  {'cut':{2},'cost':0}\nv[4] cuts:\n  {'cut':{4},'cost':0}\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}

func TestFprintFractionalCost(t *testing.T) {
	tbl := NewTable(1, 2, 2)
	tbl.Put(0, 0, 0.5, []aig.Lit{2, 4})
	var buf bytes.Buffer
	if err := Fprint(&buf, tbl, 0); err != nil {
		t.Fatal(err)
	}
	want := "v[2] cuts:\n  {'cut':{2,4},'cost':0.5}\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}
