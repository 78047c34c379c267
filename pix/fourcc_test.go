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

func TestStrToFourCC(t *testing.T) {
	f, err := StrToFourCC("NV12")
	if err != nil {
		t.Fatalf("StrToFourCC(NV12) failed: %v", err)
	}
	want := FourCC('N' | 'V'<<8 | '1'<<16 | '2'<<24)
	if f != want {
		t.Errorf("StrToFourCC(NV12) = %#x, want %#x", uint32(f), uint32(want))
	}
	if got := f.String(); got != "NV12" {
		t.Errorf("FourCC.String() = %q, want NV12", got)
	}
}

func TestStrToFourCCRoundTrip(t *testing.T) {
	for _, s := range []string{"YUYV", "pRAA", "BA81", "XB30", "GREY"} {
		f, err := StrToFourCC(s)
		if err != nil {
			t.Fatalf("StrToFourCC(%q) failed: %v", s, err)
		}
		if got := f.String(); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	}
}

func TestStrToFourCCInvalid(t *testing.T) {
	for _, s := range []string{"", "NV1", "NV120"} {
		if _, err := StrToFourCC(s); !errors.Is(err, ErrInvalidFourcc) {
			t.Errorf("StrToFourCC(%q) error = %v, want ErrInvalidFourcc", s, err)
		}
	}
}
