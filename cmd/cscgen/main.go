// Copyright 2025 go-pixfmt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command cscgen generates the YCbCr to BGR matrix table used by the
// conv package.
//
// Usage:
//
//	cscgen -output pix/conv/matrices.go
//
// Or via go:generate from pix/conv:
//
//	//go:generate go run ../../cmd/cscgen -output matrices.go
//
// BT.709 and BT.2020 coefficients are derived from the Kr/Kb constants
// of their ITU recommendations. The BT.601 entries are pinned: decoded
// frames are digest-compared against archived reference output, so the
// table must stay bit-identical to the coefficients that produced it.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strconv"
	"strings"
)

var outputFile = flag.String("output", "matrices.go", "Output file path")

type cscParams struct {
	offY, offCb, offCr float64
	m                  [3][3]float64
}

// derive computes the YCbCr to BGR coefficients from the Kr/Kb
// constants of an ITU standard. Rows are B, G, R; columns Y, Cb, Cr.
func derive(kr, kb float64, limited bool) cscParams {
	kg := 1 - kr - kb

	yScale, cScale, offY := 1.0, 1.0, 0.0
	if limited {
		yScale = 255.0 / 219.0
		cScale = 255.0 / 224.0
		offY = -16
	}

	y := 1.0 * yScale
	bu := 2.0 * (1 - kb) * cScale
	gu := -2.0 * (1 - kb) * kb / kg * cScale
	gv := -2.0 * (1 - kr) * kr / kg * cScale
	rv := 2.0 * (1 - kr) * cScale

	return cscParams{
		offY: offY, offCb: -128, offCr: -128,
		m: [3][3]float64{
			{y, bu, 0},
			{y, gu, gv},
			{y, 0, rv},
		},
	}
}

// bt601 carries the pinned coefficients; indexed limited, full.
var bt601 = [2]cscParams{
	{
		offY: -16, offCb: -128, offCr: -128,
		m: [3][3]float64{
			{1.1643854428931106, 2.01722743572137, 0},
			{1.1643854428931106, -0.3917753871976806, -0.8129854276340887},
			{1.1643854428931106, 0, 1.596032654306859},
		},
	},
	{
		offY: 0, offCb: -128, offCr: -128,
		m: [3][3]float64{
			{1.0, 1.7720149538414587, 0},
			{1.0, -0.3441367208361944, -0.714152742809186},
			{1.0, 0, 1.4019989318684671},
		},
	},
}

// lit renders a float64 as a Go literal that round-trips exactly.
func lit(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func writeParams(buf *bytes.Buffer, rng string, p cscParams) {
	fmt.Fprintf(buf, "%s: {\n", rng)
	fmt.Fprintf(buf, "offY: %g, offCb: %g, offCr: %g,\n", p.offY, p.offCb, p.offCr)
	fmt.Fprintf(buf, "m: [3][3]float64{\n")
	for _, row := range p.m {
		fmt.Fprintf(buf, "{%s, %s, %s},\n", lit(row[0]), lit(row[1]), lit(row[2]))
	}
	fmt.Fprintf(buf, "},\n},\n")
}

func generate() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by cscgen. DO NOT EDIT.\n\n")
	buf.WriteString("package conv\n\n")
	buf.WriteString("// cscParams holds the YCbCr to BGR transform for one encoding/range\n")
	buf.WriteString("// pair. Rows of m are the output channels B, G, R; columns are the\n")
	buf.WriteString("// inputs Y, Cb, Cr after the offsets have been applied.\n")
	buf.WriteString("type cscParams struct {\n")
	buf.WriteString("offY, offCb, offCr float64\n")
	buf.WriteString("m [3][3]float64\n")
	buf.WriteString("}\n\n")

	buf.WriteString("var cscTable = [3][2]cscParams{\n")
	tables := []struct {
		name           string
		limited, full  cscParams
	}{
		{"BT601", bt601[0], bt601[1]},
		{"BT709", derive(0.2126, 0.0722, true), derive(0.2126, 0.0722, false)},
		{"BT2020", derive(0.2627, 0.0593, true), derive(0.2627, 0.0593, false)},
	}
	for _, t := range tables {
		fmt.Fprintf(&buf, "%s: {\n", t.name)
		writeParams(&buf, "RangeLimited", t.limited)
		writeParams(&buf, "RangeFull", t.full)
		buf.WriteString("},\n")
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func main() {
	flag.Parse()

	src, err := generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cscgen: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "cscgen: %v\n", err)
		os.Exit(1)
	}
}
