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

// CSI-2 style bit unpacking. Each row unpacks independently, so the
// RAW pipeline can hand rows to the worker pool.

// unpackRow10 expands packed 10-bit samples into dst. Every 5 source
// bytes hold 4 samples: the first 4 bytes carry the high 8 bits, the
// 5th byte carries the 2 low bits of each sample, first sample in the
// two highest bits. dst must hold len(src)/5*4 samples.
func unpackRow10(dst []uint16, src []byte) {
	groups := len(src) / 5
	for g := range groups {
		b := src[g*5 : g*5+5]
		o := dst[g*4 : g*4+4]
		low := b[4]
		o[0] = uint16(b[0])<<2 | uint16(low>>6)&0b11
		o[1] = uint16(b[1])<<2 | uint16(low>>4)&0b11
		o[2] = uint16(b[2])<<2 | uint16(low>>2)&0b11
		o[3] = uint16(b[3])<<2 | uint16(low)&0b11
	}
}

// unpackRow12 expands packed 12-bit samples into dst. Every 3 source
// bytes hold 2 samples: the first 2 bytes carry the high 8 bits, the
// 3rd byte carries the low 4 bits, first sample in the high nibble.
// dst must hold len(src)/3*2 samples.
func unpackRow12(dst []uint16, src []byte) {
	groups := len(src) / 3
	for g := range groups {
		b := src[g*3 : g*3+3]
		o := dst[g*2 : g*2+2]
		low := b[2]
		o[0] = uint16(b[0])<<4 | uint16(low>>4)&0b1111
		o[1] = uint16(b[1])<<4 | uint16(low)&0b1111
	}
}
