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

import "testing"

// pack10 is the inverse of unpackRow10, used only to verify the round
// trip.
func pack10(samples [4]uint16) [5]byte {
	var b [5]byte
	for i, s := range samples {
		b[i] = byte(s >> 2)
		b[4] |= byte(s&0b11) << ((3 - i) * 2)
	}
	return b
}

func pack12(samples [2]uint16) [3]byte {
	var b [3]byte
	for i, s := range samples {
		b[i] = byte(s >> 4)
		b[2] |= byte(s&0b1111) << ((1 - i) * 4)
	}
	return b
}

func TestUnpackRow10RoundTrip(t *testing.T) {
	for v := uint16(0); v < 1024; v++ {
		samples := [4]uint16{v, 1023 - v, (v * 7) % 1024, v / 3}
		packed := pack10(samples)
		var got [4]uint16
		unpackRow10(got[:], packed[:])
		if got != samples {
			t.Fatalf("v=%d: unpack = %v, want %v", v, got, samples)
		}
	}
}

func TestUnpackRow12RoundTrip(t *testing.T) {
	for v := uint16(0); v < 4096; v++ {
		samples := [2]uint16{v, 4095 - v}
		packed := pack12(samples)
		var got [2]uint16
		unpackRow12(got[:], packed[:])
		if got != samples {
			t.Fatalf("v=%d: unpack = %v, want %v", v, got, samples)
		}
	}
}

func TestUnpackRow10Layout(t *testing.T) {
	// The 5th byte holds the low bits, first sample in the two
	// highest bits.
	src := []byte{0xFF, 0x00, 0x80, 0x01, 0b11_00_01_10}
	want := [4]uint16{0x3FF, 0x000, 0x201, 0x006}
	var got [4]uint16
	unpackRow10(got[:], src)
	if got != want {
		t.Errorf("unpackRow10 = %v, want %v", got, want)
	}
}

func TestUnpackRow12Layout(t *testing.T) {
	// The 3rd byte holds the low nibbles, first sample in the high
	// nibble.
	src := []byte{0xFF, 0x12, 0xA5}
	want := [2]uint16{0xFFA, 0x125}
	var got [2]uint16
	unpackRow12(got[:], src)
	if got != want {
		t.Errorf("unpackRow12 = %v, want %v", got, want)
	}
}

func TestUnpackMultipleGroups(t *testing.T) {
	src := make([]byte, 10) // two 10-bit groups
	for i := range src {
		src[i] = byte(i * 17)
	}
	got := make([]uint16, 8)
	unpackRow10(got, src)
	var want [4]uint16
	unpackRow10(want[:], src[:5])
	for i := range 4 {
		if got[i] != want[i] {
			t.Errorf("group 0 sample %d = %d, want %d", i, got[i], want[i])
		}
	}
	unpackRow10(want[:], src[5:])
	for i := range 4 {
		if got[4+i] != want[i] {
			t.Errorf("group 1 sample %d = %d, want %d", i, got[4+i], want[i])
		}
	}
}
