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

package pix

import "fmt"

// ColorEncoding classifies how a format's samples encode color.
type ColorEncoding int

const (
	// ColorRGB formats store red/green/blue (optionally alpha) samples.
	ColorRGB ColorEncoding = iota

	// ColorYUV formats store luma and chroma samples.
	ColorYUV

	// ColorRAW formats store a single-channel Bayer sensor mosaic.
	ColorRAW

	// ColorUndefined marks formats with no decodable color model.
	ColorUndefined
)

// String returns a human-readable name for the color encoding.
func (c ColorEncoding) String() string {
	switch c {
	case ColorRGB:
		return "RGB"
	case ColorYUV:
		return "YUV"
	case ColorRAW:
		return "RAW"
	case ColorUndefined:
		return "UNDEFINED"
	default:
		return "unknown"
	}
}

// PlaneInfo describes one independently addressed memory plane of a
// pixel format.
type PlaneInfo struct {
	// BytesPerGroup is the number of bytes one horizontal pixel group
	// occupies in this plane.
	BytesPerGroup int

	// HorizSubsampling and VertSubsampling give the spatial resolution
	// of this plane's samples relative to the full image: 2 means the
	// plane holds one sample per 2 pixels along that axis.
	HorizSubsampling int
	VertSubsampling  int
}

// PixelFormat is one immutable format descriptor. All descriptors live
// in the package-level catalog; do not construct PixelFormat values at
// runtime.
type PixelFormat struct {
	// Name uniquely identifies the format.
	Name string

	// DRMFourCC and V4L2FourCC are the kernel API codes for this
	// layout. Either may be zero when no code is assigned.
	DRMFourCC  FourCC
	V4L2FourCC FourCC

	Color ColorEncoding

	// Packed marks formats whose samples are not byte aligned
	// (e.g. 10 bits per sample), requiring bit unpacking before use.
	Packed bool

	// GroupX and GroupY give the pixel group size: the minimal block
	// of pixels that maps to a whole number of bytes in every plane.
	GroupX int
	GroupY int

	// Planes lists the memory planes, outermost first.
	Planes []PlaneInfo
}

// String returns the format name.
func (f *PixelFormat) String() string {
	return f.Name
}

// Stride returns the byte distance between the starts of consecutive
// rows of the given plane, for an image of the given width, rounded up
// to align bytes. align values below 1 are treated as 1.
func (f *PixelFormat) Stride(width, plane, align int) (int, error) {
	if plane < 0 || plane >= len(f.Planes) {
		return 0, fmt.Errorf("%w: plane %d of %s", ErrInvalidPlane, plane, f.Name)
	}
	if align < 1 {
		align = 1
	}
	stride := (width + f.GroupX - 1) / f.GroupX * f.Planes[plane].BytesPerGroup
	return (stride + align - 1) / align * align, nil
}

// PlaneSize returns the byte size of the given plane for an image of
// the given height, using a previously computed stride.
func (f *PixelFormat) PlaneSize(stride, height, plane int) (int, error) {
	if plane < 0 || plane >= len(f.Planes) {
		return 0, fmt.Errorf("%w: plane %d of %s", ErrInvalidPlane, plane, f.Name)
	}
	if stride == 0 {
		return 0, nil
	}
	vsub := f.Planes[plane].VertSubsampling
	return stride * ((height + vsub - 1) / vsub), nil
}

// FrameSize returns the total byte size of one frame: the sum of all
// plane sizes, each plane using its own stride.
func (f *PixelFormat) FrameSize(width, height, align int) int {
	total := 0
	for i := range f.Planes {
		stride, _ := f.Stride(width, i, align)
		size, _ := f.PlaneSize(stride, height, i)
		total += size
	}
	return total
}
