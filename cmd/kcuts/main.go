// Copyright 2026 The KCuts Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-air/kcuts/aiger"
	"github.com/go-air/kcuts/cuts"
	"github.com/go-air/kcuts/logger"
)

var (
	k        = flag.Int("k", 4, "maximum number of inputs for each cut (minimum 2)")
	p        = flag.Int("p", 2, "number of priority cuts stored for each vertex (minimum 2)")
	display  = flag.Bool("d", false, "display the cuts of every vertex on standard output")
	help     = flag.Bool("h", false, "show this help and exit")
	helpLong = flag.Bool("help", false, "show this help and exit")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, usage, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *help || *helpLong {
		flag.Usage()
		return 1
	}
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "%s: exactly one <file> argument is required\n", os.Args[0])
		flag.Usage()
		return 1
	}
	if *k < 2 || *p < 2 {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], cuts.ParamTooSmall)
		return 1
	}
	log := logger.Logger()
	start := time.Now()
	g, err := aiger.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		return 1
	}
	loaded := time.Now()
	t, err := cuts.Compute(g, *k, *p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		return 1
	}
	computed := time.Now()
	if *display {
		if err := cuts.FprintAll(os.Stdout, t); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
			return 1
		}
	}
	log.Info().
		Int("vertices", g.M()).
		Int("ands", g.A()).
		Dur("load", loaded.Sub(start)).
		Dur("compute", computed.Sub(loaded)).
		Msg("priority k-cuts computed")
	return 0
}
