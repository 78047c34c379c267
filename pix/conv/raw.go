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
	"strconv"
	"strings"

	"github.com/gopixels/go-pixfmt/pix"
	"github.com/gopixels/go-pixfmt/pix/plane"
)

// rawFormat is the parsed identity of a Bayer format name of the
// shape S<PATTERN><bits>[P], e.g. SRGGB10P.
type rawFormat struct {
	pattern  bayerPattern
	bits     int
	isPacked bool
}

func parseRawFormat(f *pix.PixelFormat) (rawFormat, error) {
	name := f.Name
	if len(name) < 6 || name[0] != 'S' {
		return rawFormat{}, fmt.Errorf("%w: RAW format %s", ErrUnsupportedFormat, f)
	}
	digits := name[5:]
	isPacked := strings.HasSuffix(digits, "P")
	if isPacked {
		digits = digits[:len(digits)-1]
	}
	bits, err := strconv.Atoi(digits)
	if err != nil {
		return rawFormat{}, fmt.Errorf("%w: RAW format %s", ErrUnsupportedFormat, f)
	}
	return rawFormat{
		pattern:  parseBayerPattern(name[1:5]),
		bits:     bits,
		isPacked: isPacked,
	}, nil
}

// prepareRaw reshapes the buffer into a width x height grid of 16-bit
// samples, trimming per-row padding and unpacking sub-byte samples.
func prepareRaw(src []byte, w, h, stride int, rf rawFormat, run rowRunner) (*plane.Plane[uint16], error) {
	grid := plane.New[uint16](w, h)

	if rf.isPacked {
		if rf.bits != 10 && rf.bits != 12 {
			return nil, fmt.Errorf("%w: %d bits packed", ErrUnsupportedBitDepth, rf.bits)
		}
		rowBytes := w * rf.bits / 8
		run(h, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				line := src[y*stride : y*stride+rowBytes]
				if rf.bits == 10 {
					unpackRow10(grid.Row(y), line)
				} else {
					unpackRow12(grid.Row(y), line)
				}
			}
		})
		return grid, nil
	}

	switch rf.bits {
	case 8:
		run(h, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				line := src[y*stride : y*stride+w]
				row := grid.Row(y)
				for x := range w {
					row[x] = uint16(line[x])
				}
			}
		})
	case 10, 12, 16:
		// Samples stored as little-endian 16-bit words.
		run(h, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				line := src[y*stride : y*stride+w*2]
				row := grid.Row(y)
				for x := range w {
					row[x] = binary.LittleEndian.Uint16(line[x*2 : x*2+2])
				}
			}
		})
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, rf.bits)
	}
	return grid, nil
}

// rawNaturalStride returns the tight row size in bytes.
func rawNaturalStride(w int, rf rawFormat) int {
	if rf.isPacked {
		return w * rf.bits / 8
	}
	if rf.bits == 8 {
		return w
	}
	return w * 2
}

// rawToBGR888 runs the full RAW pipeline: unpack, demosaic, shift to
// 8 bits.
func rawToBGR888(dst, src []byte, f *pix.PixelFormat, w, h, stride int, opts Options, run rowRunner) error {
	rf, err := parseRawFormat(f)
	if err != nil {
		return err
	}

	grid, err := prepareRaw(src, w, h, stride, rf, run)
	if err != nil {
		return err
	}

	shift := uint(rf.bits - 8)
	switch opts.Demosaic {
	case Demosaic3x3:
		demosaic3x3(dst, grid, rf.pattern, shift, run)
	case DemosaicBilinear:
		demosaicBilinear(dst, grid, rf.pattern, shift, run)
	default:
		return fmt.Errorf("%w: DemosaicMethod(%d)", ErrUnsupportedDemosaicMethod, int(opts.Demosaic))
	}
	return nil
}
