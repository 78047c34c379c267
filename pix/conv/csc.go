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

import "fmt"

//go:generate go run ../../cmd/cscgen -output matrices.go

// MatrixFor returns the YCbCr offsets and 3x3 matrix for an
// encoding/range pair. The matrix rows are the output channels
// B, G, R; the columns are the inputs Y, Cb, Cr.
func MatrixFor(e Encoding, r Range) (offsets [3]float64, matrix [3][3]float64, err error) {
	p, err := paramsFor(e, r)
	if err != nil {
		return offsets, matrix, err
	}
	return [3]float64{p.offY, p.offCb, p.offCr}, p.m, nil
}

func paramsFor(e Encoding, r Range) (*cscParams, error) {
	if e < BT601 || e > BT2020 {
		return nil, fmt.Errorf("%w: Encoding(%d)", ErrUnknownEncoding, int(e))
	}
	if r < RangeLimited || r > RangeFull {
		return nil, fmt.Errorf("%w: Range(%d)", ErrUnknownRange, int(r))
	}
	return &cscTable[e][r], nil
}

// pixel converts one YCbCr triple to B, G, R. Every product is
// rounded to float64 before the sums, so the result cannot change
// with the compiler's use of fused multiply-add, and the final
// conversion truncates toward zero.
func (p *cscParams) pixel(yv, cb, cr uint8) (b, g, r uint8) {
	yf := float64(yv) + p.offY
	uf := float64(cb) + p.offCb
	vf := float64(cr) + p.offCr
	b = clip8(float64(p.m[0][0]*yf) + float64(p.m[0][1]*uf) + float64(p.m[0][2]*vf))
	g = clip8(float64(p.m[1][0]*yf) + float64(p.m[1][1]*uf) + float64(p.m[1][2]*vf))
	r = clip8(float64(p.m[2][0]*yf) + float64(p.m[2][1]*uf) + float64(p.m[2][2]*vf))
	return b, g, r
}

func clip8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// lumaPixel maps a grey sample to the value replicated into all three
// output channels. Limited range rescales [16, 235] to [0, 255].
func lumaPixel(y uint8, r Range) uint8 {
	if r == RangeFull {
		return y
	}
	return clip8((float64(y) - 16.0) * (255.0 / 219.0))
}
