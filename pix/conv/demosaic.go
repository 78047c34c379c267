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

package conv

import (
	"github.com/gopixels/go-pixfmt/pix/plane"
)

// bayerPattern holds the (x, y) parities of the four sample roles in
// the repeating 2x2 tile. g1 is the second green site.
type bayerPattern struct {
	r0, g0, g1, b0 [2]int
}

// parseBayerPattern locates R, G, G, B in a 4-character pattern
// string such as "RGGB". Character index i maps to tile coordinates
// (i%2, i/2).
func parseBayerPattern(pattern string) bayerPattern {
	var p bayerPattern
	gSeen := false
	for i := 0; i < len(pattern) && i < 4; i++ {
		xy := [2]int{i % 2, i / 2}
		switch pattern[i] {
		case 'R':
			p.r0 = xy
		case 'G':
			if !gSeen {
				p.g0 = xy
				gSeen = true
			} else {
				p.g1 = xy
			}
		case 'B':
			p.b0 = xy
		}
	}
	return p
}

// scatter2x2 copies the mosaic samples with tile parity (srcX, srcY)
// into dst at the fixed parity (dstX, dstY), interior offset by pad.
func scatter2x2(dst *plane.Plane[uint32], raw *plane.Plane[uint16], srcX, srcY, dstX, dstY, pad int) {
	w, h := raw.Width(), raw.Height()
	for i := 0; dstY+2*i < h; i++ {
		srcRow := raw.Row(srcY + 2*i)
		dstRow := dst.Row(pad + dstY + 2*i)
		for j := 0; dstX+2*j < w; j++ {
			dstRow[pad+dstX+2*j] = uint32(srcRow[srcX+2*j])
		}
	}
}

// demosaic3x3 reconstructs BGR from the mosaic by averaging, per
// channel, all real samples inside each pixel's 3x3 neighborhood.
// Samples of each role land at fixed output parities (R odd/even,
// G even/even and odd/odd, B even/odd) regardless of the source
// pattern, and a parallel 0/1 coverage plane records which cells hold
// a real sample. Both planes carry a 1-pixel zero border, so border
// windows simply see fewer samples. The 2x2 tiling puts at least one
// sample of every channel in any 3x3 window, including corners, so
// the divisor is never zero.
//
// dst receives w*h*3 bytes in B,G,R order, each value shifted down by
// shift to reach 8 bits. run splits the output rows across workers.
func demosaic3x3(dst []byte, raw *plane.Plane[uint16], pat bayerPattern, shift uint, run rowRunner) {
	w, h := raw.Width(), raw.Height()
	const pad = 1
	pw := w + 2*pad

	// Channel order here is R, G, B to match the scatter parities;
	// the output write below flips to B, G, R.
	val := [3]*plane.Plane[uint32]{
		plane.NewPadded[uint32](w, h, pad),
		plane.NewPadded[uint32](w, h, pad),
		plane.NewPadded[uint32](w, h, pad),
	}
	cov := [3]*plane.Plane[uint32]{
		plane.NewPadded[uint32](w, h, pad),
		plane.NewPadded[uint32](w, h, pad),
		plane.NewPadded[uint32](w, h, pad),
	}

	scatter2x2(val[0], raw, pat.r0[0], pat.r0[1], 0, 1, pad) // R
	scatter2x2(val[1], raw, pat.g0[0], pat.g0[1], 0, 0, pad) // G
	scatter2x2(val[1], raw, pat.g1[0], pat.g1[1], 1, 1, pad) // G
	scatter2x2(val[2], raw, pat.b0[0], pat.b0[1], 1, 0, pad) // B

	mark := func(ch, px, py int) {
		p := cov[ch]
		for y := pad + py; y < pad+h; y += 2 {
			row := p.Row(y)
			for x := pad + px; x < pad+w; x += 2 {
				row[x] = 1
			}
		}
	}
	mark(0, 0, 1)
	mark(1, 0, 0)
	mark(1, 1, 1)
	mark(2, 1, 0)

	run(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			out := dst[y*w*3 : (y+1)*w*3]
			for ch := range 3 {
				v0 := val[ch].Row(y)
				v1 := val[ch].Row(y + 1)
				v2 := val[ch].Row(y + 2)
				c0 := cov[ch].Row(y)
				c1 := cov[ch].Row(y + 1)
				c2 := cov[ch].Row(y + 2)
				// Output byte 0 is B; channel 0 is R.
				o := 2 - ch
				for x := range w {
					var vsum, csum uint32
					for k := 0; k < 3 && x+k < pw; k++ {
						vsum += v0[x+k] + v1[x+k] + v2[x+k]
						csum += c0[x+k] + c1[x+k] + c2[x+k]
					}
					out[x*3+o] = uint8((vsum / csum) >> shift)
				}
			}
		}
	})
}

// demosaicBilinear copies the known samples into their true positions
// and fills each missing value from the 2 or 4 adjacent known
// neighbors: green from the cross around red/blue sites, red/blue
// from the diagonals around each other's sites, and red/blue from the
// row or column neighbors around green sites. Division truncates and
// out-of-bounds neighbors are skipped.
func demosaicBilinear(dst []byte, raw *plane.Plane[uint16], pat bayerPattern, shift uint, run rowRunner) {
	w, h := raw.Width(), raw.Height()

	r := plane.New[uint16](w, h)
	g := plane.New[uint16](w, h)
	b := plane.New[uint16](w, h)

	copySites := func(p *plane.Plane[uint16], px, py int) {
		for y := py; y < h; y += 2 {
			src := raw.Row(y)
			row := p.Row(y)
			for x := px; x < w; x += 2 {
				row[x] = src[x]
			}
		}
	}
	copySites(r, pat.r0[0], pat.r0[1])
	copySites(g, pat.g0[0], pat.g0[1])
	copySites(g, pat.g1[0], pat.g1[1])
	copySites(b, pat.b0[0], pat.b0[1])

	cross := func(p *plane.Plane[uint16], x, y int) uint16 {
		var sum, n uint32
		if y > 0 {
			sum += uint32(p.At(x, y-1))
			n++
		}
		if y < h-1 {
			sum += uint32(p.At(x, y+1))
			n++
		}
		if x > 0 {
			sum += uint32(p.At(x-1, y))
			n++
		}
		if x < w-1 {
			sum += uint32(p.At(x+1, y))
			n++
		}
		if n == 0 {
			return 0
		}
		return uint16(sum / n)
	}
	diagonal := func(p *plane.Plane[uint16], x, y int) uint16 {
		var sum, n uint32
		if y > 0 && x > 0 {
			sum += uint32(p.At(x-1, y-1))
			n++
		}
		if y > 0 && x < w-1 {
			sum += uint32(p.At(x+1, y-1))
			n++
		}
		if y < h-1 && x > 0 {
			sum += uint32(p.At(x-1, y+1))
			n++
		}
		if y < h-1 && x < w-1 {
			sum += uint32(p.At(x+1, y+1))
			n++
		}
		if n == 0 {
			return 0
		}
		return uint16(sum / n)
	}
	horizontal := func(p *plane.Plane[uint16], x, y int) uint16 {
		var sum, n uint32
		if x > 0 {
			sum += uint32(p.At(x-1, y))
			n++
		}
		if x < w-1 {
			sum += uint32(p.At(x+1, y))
			n++
		}
		if n == 0 {
			return 0
		}
		return uint16(sum / n)
	}
	vertical := func(p *plane.Plane[uint16], x, y int) uint16 {
		var sum, n uint32
		if y > 0 {
			sum += uint32(p.At(x, y-1))
			n++
		}
		if y < h-1 {
			sum += uint32(p.At(x, y+1))
			n++
		}
		if n == 0 {
			return 0
		}
		return uint16(sum / n)
	}

	// forSites runs fn over every row of the given parity within a
	// worker band.
	forSites := func(y0, y1, px, py int, fn func(x, y int)) {
		y := y0
		if rem := (y - py) % 2; rem != 0 {
			y++
		}
		if y < py {
			y = py
		}
		for ; y < y1; y += 2 {
			for x := px; x < w; x += 2 {
				fn(x, y)
			}
		}
	}

	// Red and blue sites read only real samples, so they form one
	// parallel phase. Green sites read red/blue values filled in by
	// that phase, so they run after it.
	run(h, func(y0, y1 int) {
		forSites(y0, y1, pat.r0[0], pat.r0[1], func(x, y int) {
			g.Set(x, y, cross(g, x, y))
			b.Set(x, y, diagonal(b, x, y))
		})
		forSites(y0, y1, pat.b0[0], pat.b0[1], func(x, y int) {
			r.Set(x, y, diagonal(r, x, y))
			g.Set(x, y, cross(g, x, y))
		})
	})
	run(h, func(y0, y1 int) {
		forSites(y0, y1, pat.g0[0], pat.g0[1], func(x, y int) {
			r.Set(x, y, horizontal(r, x, y))
			b.Set(x, y, vertical(b, x, y))
		})
		forSites(y0, y1, pat.g1[0], pat.g1[1], func(x, y int) {
			b.Set(x, y, horizontal(b, x, y))
			r.Set(x, y, vertical(r, x, y))
		})
	})

	run(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			out := dst[y*w*3 : (y+1)*w*3]
			rr := r.Row(y)
			gr := g.Row(y)
			br := b.Row(y)
			for x := range w {
				out[x*3+0] = uint8(br[x] >> shift)
				out[x*3+1] = uint8(gr[x] >> shift)
				out[x*3+2] = uint8(rr[x] >> shift)
			}
		}
	})
}
