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
	"encoding/binary"
	"fmt"

	"github.com/gopixels/go-pixfmt/pix"
)

// RGB reordering: every handler rewrites one row of source pixels
// into canonical B,G,R triples.

// copyRows handles layouts that are already B,G,R, stripping row
// padding.
func copyRows(dst, src []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		copy(dst[y*w*3:(y+1)*w*3], src[y*stride:y*stride+w*3])
	}
}

// swapRows reverses R,G,B triples into B,G,R.
func swapRows(dst, src []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		line := src[y*stride:]
		out := dst[y*w*3:]
		for x := 0; x < w; x++ {
			out[x*3] = line[x*3+2]
			out[x*3+1] = line[x*3+1]
			out[x*3+2] = line[x*3]
		}
	}
}

// pick4Rows takes three bytes out of each 4-byte pixel. idx lists the
// source byte positions producing B, G, R.
func pick4Rows(dst, src []byte, w, h, stride int, idx [3]int) {
	for y := 0; y < h; y++ {
		line := src[y*stride:]
		out := dst[y*w*3:]
		for x := 0; x < w; x++ {
			px := line[x*4 : x*4+4]
			out[x*3] = px[idx[0]]
			out[x*3+1] = px[idx[1]]
			out[x*3+2] = px[idx[2]]
		}
	}
}

// xbgr2101010Rows extracts the three 10-bit fields of each
// little-endian 32-bit word (R at bit 0, G at 10, B at 20) and
// truncates them to 8 bits.
func xbgr2101010Rows(dst, src []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		line := src[y*stride:]
		out := dst[y*w*3:]
		for x := 0; x < w; x++ {
			v := binary.LittleEndian.Uint32(line[x*4 : x*4+4])
			out[x*3] = uint8((v >> 20 & 0x3FF) >> 2)
			out[x*3+1] = uint8((v >> 10 & 0x3FF) >> 2)
			out[x*3+2] = uint8((v & 0x3FF) >> 2)
		}
	}
}

// rgbToBGR888 dispatches on the RGB format identity.
func rgbToBGR888(dst, src []byte, f *pix.PixelFormat, w, h, stride int) error {
	switch f {
	case pix.BGR888:
		copyRows(dst, src, w, h, stride)
	case pix.RGB888:
		swapRows(dst, src, w, h, stride)
	case pix.XRGB8888, pix.ARGB8888:
		// Memory order B,G,R,X.
		pick4Rows(dst, src, w, h, stride, [3]int{0, 1, 2})
	case pix.XBGR8888, pix.ABGR8888:
		// Memory order R,G,B,X.
		pick4Rows(dst, src, w, h, stride, [3]int{2, 1, 0})
	case pix.RGBX8888, pix.RGBA8888:
		// Memory order X,B,G,R.
		pick4Rows(dst, src, w, h, stride, [3]int{1, 2, 3})
	case pix.XBGR2101010:
		xbgr2101010Rows(dst, src, w, h, stride)
	default:
		return fmt.Errorf("%w: RGB format %s", ErrUnsupportedFormat, f)
	}
	return nil
}
