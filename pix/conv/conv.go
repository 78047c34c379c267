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

// Package conv decodes raw pixel buffers into canonical BGR888:
// row-major, three bytes per pixel in B,G,R order, no row padding.
//
// The single entry point is BufferToBGR888. It dispatches on the
// format's color encoding: YUV formats are chroma-upsampled and run
// through the YCbCr matrix, RAW Bayer formats are bit-unpacked and
// demosaiced, RGB formats are reordered. Two numerically identical
// backends exist; see Accelerated.
package conv

import (
	"fmt"

	"github.com/gopixels/go-pixfmt/pix"
)

// BufferToBGR888 converts one complete frame in the given format to
// a newly allocated BGR888 buffer. bytesPerLine gives the source row
// stride; 0 derives the natural stride from the format. The input is
// not modified.
func BufferToBGR888(f *pix.PixelFormat, width, height, bytesPerLine int, buf []byte, opts Options) ([]byte, error) {
	return bufferToBGR888(f, width, height, bytesPerLine, buf, opts, activeRunner(), accelerated)
}

func bufferToBGR888(f *pix.PixelFormat, w, h, bpl int, buf []byte, opts Options, run rowRunner, fused bool) ([]byte, error) {
	if w <= 0 || w%f.GroupX != 0 {
		return nil, fmt.Errorf("%w: width %d is not a positive multiple of the %s pixel group",
			ErrUnsupportedFormat, w, f)
	}
	if h <= 0 || h%f.GroupY != 0 {
		return nil, fmt.Errorf("%w: height %d is not a positive multiple of the %s pixel group",
			ErrUnsupportedFormat, h, f)
	}

	// Per-plane custom strides cannot be derived from a single bytes
	// per line value, so multiplane formats take only bpl == 0.
	if len(f.Planes) > 1 && bpl != 0 {
		return nil, fmt.Errorf("%w: custom bytes per line with multiplane format %s",
			ErrUnsupportedFormat, f)
	}

	natural, err := f.Stride(w, 0, 1)
	if err != nil {
		return nil, err
	}
	stride := natural
	if bpl != 0 {
		if bpl < natural {
			return nil, fmt.Errorf("%w: %d < %d for %s width %d",
				ErrStrideTooSmall, bpl, natural, f, w)
		}
		stride = bpl
	}

	required := f.FrameSize(w, h, 1)
	if bpl != 0 {
		required = stride * h
	}
	if len(buf) < required {
		return nil, fmt.Errorf("%w: have %d bytes, need %d for %dx%d %s",
			ErrBufferTooSmall, len(buf), required, w, h, f)
	}

	dst := make([]byte, w*h*3)

	switch f.Color {
	case pix.ColorYUV:
		if err := yuvToBGR888(dst, buf, f, w, h, stride, opts, run, fused); err != nil {
			return nil, err
		}
	case pix.ColorRAW:
		if err := rawToBGR888(dst, buf, f, w, h, stride, opts, run); err != nil {
			return nil, err
		}
	case pix.ColorRGB:
		if err := rgbToBGR888(dst, buf, f, w, h, stride); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s has color encoding %s", ErrUnsupportedFormat, f, f.Color)
	}
	return dst, nil
}

// yuvToBGR888 dispatches on the YUV format identity.
func yuvToBGR888(dst, src []byte, f *pix.PixelFormat, w, h, stride int, opts Options, run rowRunner, fused bool) error {
	p, err := paramsFor(opts.Encoding, opts.Range)
	if err != nil {
		return err
	}

	switch f {
	case pix.Y8:
		if fused {
			fastY8(dst, src, w, h, stride, opts.Range, run)
		} else {
			baseY8(dst, src, w, h, stride, opts.Range)
		}
	case pix.YUYV:
		if fused {
			fastYUYV(dst, src, w, h, stride, p, run)
		} else {
			baseYUYV(dst, src, w, h, stride, p)
		}
	case pix.UYVY:
		if fused {
			fastUYVY(dst, src, w, h, stride, p, run)
		} else {
			baseUYVY(dst, src, w, h, stride, p)
		}
	case pix.NV12:
		if fused {
			fastSemiplanar(dst, src, w, h, 2, p, run)
		} else {
			baseSemiplanar(dst, src, w, h, 2, p)
		}
	case pix.NV16:
		if fused {
			fastSemiplanar(dst, src, w, h, 1, p, run)
		} else {
			baseSemiplanar(dst, src, w, h, 1, p)
		}
	case pix.VUY888:
		if fused {
			fast444(dst, src, w, h, stride, 3, p, run)
		} else {
			base444(dst, src, w, h, stride, 3, p)
		}
	case pix.XVUY8888:
		if fused {
			fast444(dst, src, w, h, stride, 4, p, run)
		} else {
			base444(dst, src, w, h, stride, 4, p)
		}
	default:
		return fmt.Errorf("%w: YUV format %s", ErrUnsupportedFormat, f)
	}
	return nil
}
