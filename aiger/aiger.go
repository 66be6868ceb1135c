// Copyright 2026 The KCuts Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bits-and-blooms/bitset"
	"github.com/go-air/kcuts/aig"
)

// Errors related to IO and formatting.
var (
	IoUnavailable       = errors.New("cannot read the input file")
	HeaderMalformed     = errors.New("wrong, invalid or unknown format")
	LatchesUnsupported  = errors.New("graph contains latches")
	CountsInconsistent  = errors.New("invalid header counts: M != I + L + A")
	NegativeIndex       = errors.New("negative literal")
	WrongInputLabel     = errors.New("input label must be twice its index")
	WrongGateLabel      = errors.New("gate label must be twice its index")
	InputOrderViolation = errors.New("first gate input must not be less than the second")
	LiteralRange        = errors.New("literal out of range")
	DuplicateOutput     = errors.New("output declared twice")
	UnexpectedEOF       = errors.New("unexpected end of file")
	UnexpectedChar      = errors.New("unexpected character")
	BinaryMismatch      = errors.New("binary/ascii mismatch")
)

// header holds the first line of an AIGER file: the magic token and
// the five counts M I L O A.
type header struct {
	binary        bool
	m, i, l, o, a int
}

// ReadFile reads the AIGER file at path, dispatching on the header
// magic between the ascii and binary bodies.
func ReadFile(path string) (*aig.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", IoUnavailable, err)
	}
	defer f.Close()
	return Read(f)
}

// Read reads an AIGER file in either format, dispatching on the
// header magic.
func Read(r io.Reader) (*aig.Graph, error) {
	br := bufio.NewReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if hdr.binary {
		return readBinaryBody(hdr, br)
	}
	return readAsciiBody(hdr, br)
}

// ReadAscii reads an AIGER file with an ascii body ("aag" magic).
func ReadAscii(r io.Reader) (*aig.Graph, error) {
	br := bufio.NewReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if hdr.binary {
		return nil, BinaryMismatch
	}
	return readAsciiBody(hdr, br)
}

// ReadBinary reads an AIGER file with a binary body ("aig" magic).
func ReadBinary(r io.Reader) (*aig.Graph, error) {
	br := bufio.NewReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if !hdr.binary {
		return nil, BinaryMismatch
	}
	return readBinaryBody(hdr, br)
}

// readHeader reads the magic token and the five decimal counts,
// checking L = 0 and M = I + L + A.
func readHeader(r *bufio.Reader) (*header, error) {
	buf := make([]byte, 0, 3)
	buf, err := readNonWS(r, buf)
	if err != nil {
		return nil, err
	}
	hdr := &header{}
	switch string(buf) {
	case "aag":
		hdr.binary = false
	case "aig":
		hdr.binary = true
	default:
		return nil, HeaderMalformed
	}
	counts := [5]int{}
	for i := range counts {
		if err := readSP(r); err != nil {
			return nil, HeaderMalformed
		}
		n, err := readUint(r)
		if err != nil {
			return nil, err
		}
		counts[i] = n
	}
	if err := readNL(r); err != nil {
		return nil, HeaderMalformed
	}
	hdr.m, hdr.i, hdr.l, hdr.o, hdr.a =
		counts[0], counts[1], counts[2], counts[3], counts[4]
	if hdr.l != 0 {
		return nil, LatchesUnsupported
	}
	if hdr.m != hdr.i+hdr.l+hdr.a {
		return nil, CountsInconsistent
	}
	return hdr, nil
}

func readAsciiBody(hdr *header, r *bufio.Reader) (*aig.Graph, error) {
	g := aig.NewGraph(hdr.i, hdr.a, hdr.o)
	for i := 0; i < hdr.i; i++ {
		n, err := readLit(r)
		if err != nil {
			return nil, err
		}
		if n != 2*(i+1) {
			return nil, fmt.Errorf("input %d has label %d: %w", i+1, n, WrongInputLabel)
		}
		if err := readNL(r); err != nil {
			return nil, err
		}
	}
	if err := readOutputs(g, hdr, r); err != nil {
		return nil, err
	}
	for k := 0; k < hdr.a; k++ {
		lit, err := readLit(r)
		if err != nil {
			return nil, err
		}
		if lit != 2*(hdr.i+k+1) {
			return nil, fmt.Errorf("gate %d has label %d: %w", k+1, lit, WrongGateLabel)
		}
		if err := readSP(r); err != nil {
			return nil, err
		}
		in1, err := readLit(r)
		if err != nil {
			return nil, err
		}
		if err := readSP(r); err != nil {
			return nil, err
		}
		in2, err := readLit(r)
		if err != nil {
			return nil, err
		}
		if err := readNL(r); err != nil {
			return nil, err
		}
		if in1 < in2 {
			return nil, fmt.Errorf("gate %d has inputs %d %d: %w", lit, in1, in2, InputOrderViolation)
		}
		if in1 >= lit {
			return nil, fmt.Errorf("gate %d has inputs %d %d: %w", lit, in1, in2, LiteralRange)
		}
		g.AddAnd(aig.Lit(in1), aig.Lit(in2))
	}
	// trailing symbol table and comments are ignored
	if err := g.Freeze(); err != nil {
		return nil, err
	}
	return g, nil
}

func readBinaryBody(hdr *header, r *bufio.Reader) (*aig.Graph, error) {
	g := aig.NewGraph(hdr.i, hdr.a, hdr.o)
	if err := readOutputs(g, hdr, r); err != nil {
		return nil, err
	}
	for k := 0; k < hdr.a; k++ {
		lit := 2 * (hdr.i + k + 1)
		delta0, err := read7(r)
		if err != nil {
			return nil, err
		}
		if delta0 < 1 || delta0 > lit {
			return nil, fmt.Errorf("gate %d has delta %d: %w", lit, delta0, LiteralRange)
		}
		in1 := lit - delta0
		delta1, err := read7(r)
		if err != nil {
			return nil, err
		}
		if delta1 > in1 {
			return nil, fmt.Errorf("gate %d has deltas %d %d: %w", lit, delta0, delta1, LiteralRange)
		}
		in2 := in1 - delta1
		g.AddAnd(aig.Lit(in1), aig.Lit(in2))
	}
	if err := g.Freeze(); err != nil {
		return nil, err
	}
	return g, nil
}

// readOutputs reads the O decimal output literal lines, common to
// both bodies.  Out-of-range outputs and duplicates are rejected;
// the constants 0 and 1 are legal output literals.
func readOutputs(g *aig.Graph, hdr *header, r *bufio.Reader) error {
	seen := bitset.New(uint(2*hdr.m + 2))
	for i := 0; i < hdr.o; i++ {
		n, err := readLit(r)
		if err != nil {
			return err
		}
		if n > 2*hdr.m+1 {
			return fmt.Errorf("output %d is %d: %w", i, n, LiteralRange)
		}
		if seen.Test(uint(n)) {
			return fmt.Errorf("output %d: %w", n, DuplicateOutput)
		}
		seen.Set(uint(n))
		g.SetOutput(i, aig.Lit(n))
		if err := readNL(r); err != nil {
			return err
		}
	}
	return nil
}

// reads a space character
func readSP(r *bufio.Reader) error {
	b, e := r.ReadByte()
	if e == io.EOF {
		return UnexpectedEOF
	}
	if e != nil {
		return e
	}
	if b != ' ' {
		return UnexpectedChar
	}
	return nil
}

// reads a new line character and returns nil unless there was no new
// line character
func readNL(r *bufio.Reader) error {
	b, e := r.ReadByte()
	if e == io.EOF {
		return UnexpectedEOF
	}
	if e != nil {
		return e
	}
	if b == '\r' {
		b, e = r.ReadByte()
		if e == io.EOF {
			return UnexpectedEOF
		}
		if e != nil {
			return e
		}
	}
	if b != '\n' {
		return UnexpectedChar
	}
	return nil
}

// reads non-white space and puts the result in buf
func readNonWS(r *bufio.Reader, buf []byte) ([]byte, error) {
	buf = buf[:0]
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			break
		}
		if e != nil {
			return buf, e
		}
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			r.UnreadByte()
			break
		}
		buf = append(buf, b)
	}
	return buf, nil
}

// reads a decimal uint
func readUint(r *bufio.Reader) (int, error) {
	result := 0
	first := true
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			if first {
				return 0, UnexpectedEOF
			}
			break
		}
		if e != nil {
			return 0, e
		}
		if b >= '0' && b <= '9' {
			result *= 10
			result += int(b - '0')
			first = false
			continue
		}
		r.UnreadByte()
		break
	}
	if first {
		return 0, UnexpectedChar
	}
	return result, nil
}

// readLit reads a decimal literal, rejecting negative values.
func readLit(r *bufio.Reader) (int, error) {
	b, e := r.ReadByte()
	if e == io.EOF {
		return 0, UnexpectedEOF
	}
	if e != nil {
		return 0, e
	}
	neg := b == '-'
	if !neg {
		r.UnreadByte()
	}
	n, err := readUint(r)
	if err != nil {
		return 0, err
	}
	if neg {
		return 0, fmt.Errorf("-%d: %w", n, NegativeIndex)
	}
	return n, nil
}

// for binary aiger coding of and deltas
func read7(r *bufio.Reader) (int, error) {
	result := 0
	i := 0
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			return 0, UnexpectedEOF
		}
		if e != nil {
			return 0, e
		}
		result |= int(b&0x7f) << uint(7*i)
		i++
		if b&0x80 == 0 {
			break
		}
	}
	return result, nil
}
