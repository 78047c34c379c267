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

// FourCC is a 4-byte ASCII code identifying a pixel format in the DRM
// and V4L2 kernel APIs, packed little-endian: the first character ends
// up in the lowest byte. The zero value means "no fourcc assigned".
type FourCC uint32

// StrToFourCC packs a 4-character string into a FourCC.
// It returns ErrInvalidFourcc if the string is not exactly 4 bytes.
func StrToFourCC(s string) (FourCC, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFourcc, s)
	}
	return FourCC(uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24), nil
}

// String unpacks the fourcc back into its 4-character form.
func (f FourCC) String() string {
	return string([]byte{
		byte(f),
		byte(f >> 8),
		byte(f >> 16),
		byte(f >> 24),
	})
}

// fourcc is the table-literal helper: it panics on malformed input,
// which can only happen from a typo in the static format catalog.
func fourcc(s string) FourCC {
	f, err := StrToFourCC(s)
	if err != nil {
		panic(err)
	}
	return f
}
