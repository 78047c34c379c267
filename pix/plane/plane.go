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

// Package plane provides strided single-channel 2D sample containers
// used as intermediate storage by the format converters.
//
// A Plane holds one channel of an image: unpacked Bayer samples, one
// demosaiced color channel, or a luma/chroma plane. Rows are
// contiguous, so converters can process the image row by row:
//
//	p := plane.New[uint16](640, 480)
//	for y := 0; y < p.Height(); y++ {
//	    row := p.Row(y)
//	    // decode one row of samples into row
//	}
package plane

// Sample constrains the element types a Plane can hold: 8-bit
// samples, unpacked 10/12/16-bit samples, and 32-bit accumulators.
type Sample interface {
	~uint8 | ~uint16 | ~uint32
}

// Plane is a single-channel 2D sample array. The zero value is an
// empty plane; use New to allocate one.
type Plane[T Sample] struct {
	data   []T
	width  int
	height int
	stride int // elements per row
}

// New allocates a width x height plane with stride == width.
// Non-positive dimensions yield an empty plane.
func New[T Sample](width, height int) *Plane[T] {
	if width <= 0 || height <= 0 {
		return &Plane[T]{}
	}
	return &Plane[T]{
		data:   make([]T, width*height),
		width:  width,
		height: height,
		stride: width,
	}
}

// NewPadded allocates a plane with pad zero-valued border samples on
// every side. Width and Height report the padded dimensions; callers
// index the interior at [pad, pad+width).
func NewPadded[T Sample](width, height, pad int) *Plane[T] {
	return New[T](width+2*pad, height+2*pad)
}

// Wrap builds a plane view over an existing sample slice with the
// given element stride. The data is shared, not copied.
func Wrap[T Sample](data []T, width, height, stride int) *Plane[T] {
	return &Plane[T]{data: data, width: width, height: height, stride: stride}
}

// Width returns the plane width in samples.
func (p *Plane[T]) Width() int {
	return p.width
}

// Height returns the plane height in rows.
func (p *Plane[T]) Height() int {
	return p.height
}

// Stride returns the number of elements between row starts.
func (p *Plane[T]) Stride() int {
	return p.stride
}

// Row returns the mutable sample slice of row y, exactly width
// elements long. It returns nil for out-of-range rows.
func (p *Plane[T]) Row(y int) []T {
	if y < 0 || y >= p.height {
		return nil
	}
	start := y * p.stride
	return p.data[start : start+p.width]
}

// At returns the sample at (x, y). Out-of-range coordinates read as
// zero, which converters rely on for border handling.
func (p *Plane[T]) At(x, y int) T {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		var zero T
		return zero
	}
	return p.data[y*p.stride+x]
}

// Set stores a sample at (x, y). Out-of-range coordinates are ignored.
func (p *Plane[T]) Set(x, y int, v T) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.data[y*p.stride+x] = v
}

// Fill sets every sample to v.
func (p *Plane[T]) Fill(v T) {
	for i := range p.data {
		p.data[i] = v
	}
}

// Clone returns a deep copy of the plane.
func (p *Plane[T]) Clone() *Plane[T] {
	c := &Plane[T]{
		data:   make([]T, len(p.data)),
		width:  p.width,
		height: p.height,
		stride: p.stride,
	}
	copy(c.data, p.data)
	return c
}

// SameSize reports whether two planes have identical dimensions.
func SameSize[T, U Sample](a *Plane[T], b *Plane[U]) bool {
	return a.width == b.width && a.height == b.height
}
