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

import (
	"errors"
	"testing"
)

// Geometry vectors for a 1920x1080 frame with no extra alignment.
func TestGeometry1080p(t *testing.T) {
	tests := []struct {
		format  *PixelFormat
		strides []int
		sizes   []int
	}{
		{XRGB8888, []int{1920 * 4}, []int{1920 * 4 * 1080}},
		{BGR888, []int{1920 * 3}, []int{1920 * 3 * 1080}},
		{YUYV, []int{1920 * 2}, []int{1920 * 2 * 1080}},
		{UYVY, []int{1920 * 2}, []int{1920 * 2 * 1080}},
		{NV12, []int{1920, 1920}, []int{1920 * 1080, 1920 * 1080 / 2}},
		{NV16, []int{1920, 1920}, []int{1920 * 1080, 1920 * 1080}},
		{Y8, []int{1920}, []int{1920 * 1080}},
		{SBGGR8, []int{1920}, []int{1920 * 1080}},
		{SRGGB10, []int{1920 * 2}, []int{1920 * 2 * 1080}},
		{SRGGB10P, []int{1920 * 5 / 4}, []int{1920 * 5 / 4 * 1080}},
		{SRGGB12P, []int{1920 * 3 / 2}, []int{1920 * 3 / 2 * 1080}},
	}
	for _, tc := range tests {
		t.Run(tc.format.Name, func(t *testing.T) {
			total := 0
			for plane := range tc.format.Planes {
				stride, err := tc.format.Stride(1920, plane, 1)
				if err != nil {
					t.Fatalf("Stride(plane %d) failed: %v", plane, err)
				}
				if stride != tc.strides[plane] {
					t.Errorf("plane %d stride = %d, want %d", plane, stride, tc.strides[plane])
				}
				size, err := tc.format.PlaneSize(stride, 1080, plane)
				if err != nil {
					t.Fatalf("PlaneSize(plane %d) failed: %v", plane, err)
				}
				if size != tc.sizes[plane] {
					t.Errorf("plane %d size = %d, want %d", plane, size, tc.sizes[plane])
				}
				total += size
			}
			if got := tc.format.FrameSize(1920, 1080, 1); got != total {
				t.Errorf("FrameSize = %d, want sum of planes %d", got, total)
			}
		})
	}
}

func TestStrideAlignment(t *testing.T) {
	// 642 pixels of BGR888 is 1926 bytes; aligned to 64 it must round
	// up to the next multiple.
	stride, err := BGR888.Stride(642, 0, 64)
	if err != nil {
		t.Fatal(err)
	}
	if stride != 1984 {
		t.Errorf("aligned stride = %d, want 1984", stride)
	}
	if stride%64 != 0 {
		t.Errorf("stride %d not a multiple of 64", stride)
	}
	// align values below 1 behave as no alignment.
	stride, err = BGR888.Stride(642, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if stride != 1926 {
		t.Errorf("unaligned stride = %d, want 1926", stride)
	}
}

func TestStrideOddWidth(t *testing.T) {
	// Widths are rounded up to a whole number of pixel groups.
	stride, err := SRGGB10P.Stride(1918, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := 1920 / 4 * 5; stride != want {
		t.Errorf("SRGGB10P stride(1918) = %d, want %d", stride, want)
	}
	stride, err = NV12.Stride(1919, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if stride != 1920 {
		t.Errorf("NV12 stride(1919) = %d, want 1920", stride)
	}
}

func TestPlaneSizeOddHeight(t *testing.T) {
	// NV12 chroma rows are subsampled vertically; odd heights round up.
	size, err := NV12.PlaneSize(1920, 1079, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := 1920 * 540; size != want {
		t.Errorf("NV12 chroma size(1079) = %d, want %d", size, want)
	}
	size, err = NV12.PlaneSize(0, 1080, 1)
	if err != nil {
		t.Fatal(err)
	}
	if size != 0 {
		t.Errorf("zero stride size = %d, want 0", size)
	}
}

func TestInvalidPlane(t *testing.T) {
	if _, err := YUYV.Stride(1920, 1, 1); !errors.Is(err, ErrInvalidPlane) {
		t.Errorf("Stride(plane 1) error = %v, want ErrInvalidPlane", err)
	}
	if _, err := YUYV.PlaneSize(3840, 1080, -1); !errors.Is(err, ErrInvalidPlane) {
		t.Errorf("PlaneSize(plane -1) error = %v, want ErrInvalidPlane", err)
	}
}

// Every catalog descriptor must hold enough geometry to compute a
// non-zero frame size.
func TestCatalogConsistency(t *testing.T) {
	for _, f := range All() {
		if f.Name == "" {
			t.Fatal("format with empty name in catalog")
		}
		if f.GroupX < 1 || f.GroupY < 1 {
			t.Errorf("%s: group %dx%d", f.Name, f.GroupX, f.GroupY)
		}
		if len(f.Planes) == 0 {
			t.Errorf("%s: no planes", f.Name)
			continue
		}
		for i, p := range f.Planes {
			if p.BytesPerGroup < 1 || p.HorizSubsampling < 1 || p.VertSubsampling < 1 {
				t.Errorf("%s plane %d: %+v", f.Name, i, p)
			}
		}
		if size := f.FrameSize(64, 48, 1); size <= 0 {
			t.Errorf("%s: FrameSize(64, 48) = %d", f.Name, size)
		}
	}
}
