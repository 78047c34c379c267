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

package plane

import "testing"

func TestNew(t *testing.T) {
	p := New[uint16](7, 3)
	if p.Width() != 7 || p.Height() != 3 || p.Stride() != 7 {
		t.Errorf("got %dx%d stride %d, want 7x3 stride 7", p.Width(), p.Height(), p.Stride())
	}
	for y := 0; y < p.Height(); y++ {
		row := p.Row(y)
		if len(row) != 7 {
			t.Fatalf("row %d length = %d, want 7", y, len(row))
		}
		for x, v := range row {
			if v != 0 {
				t.Errorf("fresh plane (%d,%d) = %d, want 0", x, y, v)
			}
		}
	}
}

func TestNewEmpty(t *testing.T) {
	for _, p := range []*Plane[uint8]{New[uint8](0, 4), New[uint8](4, -1)} {
		if p.Width() != 0 || p.Height() != 0 {
			t.Errorf("empty plane reports %dx%d", p.Width(), p.Height())
		}
		if p.Row(0) != nil {
			t.Error("Row(0) of empty plane is not nil")
		}
	}
}

func TestAtSet(t *testing.T) {
	p := New[uint8](4, 4)
	p.Set(2, 3, 0xAB)
	if got := p.At(2, 3); got != 0xAB {
		t.Errorf("At(2,3) = %#x, want 0xAB", got)
	}

	// Out of range reads are zero, writes are dropped.
	if got := p.At(-1, 0); got != 0 {
		t.Errorf("At(-1,0) = %d, want 0", got)
	}
	if got := p.At(0, 4); got != 0 {
		t.Errorf("At(0,4) = %d, want 0", got)
	}
	p.Set(4, 0, 0xFF)
	p.Set(0, -1, 0xFF)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x == 2 && y == 3 {
				continue
			}
			if p.At(x, y) != 0 {
				t.Errorf("(%d,%d) modified by out-of-range Set", x, y)
			}
		}
	}
}

func TestNewPadded(t *testing.T) {
	p := NewPadded[uint16](4, 2, 1)
	if p.Width() != 6 || p.Height() != 4 {
		t.Errorf("padded plane is %dx%d, want 6x4", p.Width(), p.Height())
	}
}

func TestWrap(t *testing.T) {
	// A 2-wide view over 3-element rows skips the last element.
	data := []uint8{1, 2, 3, 4, 5, 6}
	p := Wrap(data, 2, 2, 3)
	if got := p.At(1, 1); got != 5 {
		t.Errorf("At(1,1) = %d, want 5", got)
	}
	row := p.Row(1)
	if len(row) != 2 || row[0] != 4 || row[1] != 5 {
		t.Errorf("Row(1) = %v, want [4 5]", row)
	}
	// The view aliases the backing slice.
	row[0] = 9
	if data[3] != 9 {
		t.Errorf("backing slice not aliased: data[3] = %d", data[3])
	}
}

func TestClone(t *testing.T) {
	p := New[uint32](3, 2)
	p.Fill(7)
	c := p.Clone()
	c.Set(0, 0, 1)
	if p.At(0, 0) != 7 {
		t.Error("Clone shares storage with the original")
	}
	if !SameSize(p, c) {
		t.Error("Clone changed dimensions")
	}
}
