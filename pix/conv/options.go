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

import "fmt"

// Range selects between limited (video) and full quantization ranges
// for YCbCr input. The zero value is RangeLimited.
type Range int

const (
	RangeLimited Range = iota
	RangeFull
)

func (r Range) String() string {
	switch r {
	case RangeLimited:
		return "limited"
	case RangeFull:
		return "full"
	default:
		return "unknown"
	}
}

// ParseRange maps "limited" and "full" to the Range values.
func ParseRange(s string) (Range, error) {
	switch s {
	case "limited":
		return RangeLimited, nil
	case "full":
		return RangeFull, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRange, s)
	}
}

// Encoding selects the YCbCr matrix standard. The zero value is BT601.
type Encoding int

const (
	BT601 Encoding = iota
	BT709
	BT2020
)

func (e Encoding) String() string {
	switch e {
	case BT601:
		return "bt601"
	case BT709:
		return "bt709"
	case BT2020:
		return "bt2020"
	default:
		return "unknown"
	}
}

// ParseEncoding maps "bt601", "bt709" and "bt2020" to the Encoding
// values.
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "bt601":
		return BT601, nil
	case "bt709":
		return BT709, nil
	case "bt2020":
		return BT2020, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
	}
}

// DemosaicMethod selects the Bayer reconstruction algorithm. The zero
// value is Demosaic3x3.
type DemosaicMethod int

const (
	// Demosaic3x3 averages all real samples of a channel within each
	// pixel's 3x3 neighborhood.
	Demosaic3x3 DemosaicMethod = iota

	// DemosaicBilinear copies known samples and fills the rest from
	// the 2 or 4 adjacent known neighbors.
	DemosaicBilinear
)

func (d DemosaicMethod) String() string {
	switch d {
	case Demosaic3x3:
		return "3x3"
	case DemosaicBilinear:
		return "bilinear"
	default:
		return "unknown"
	}
}

// ParseDemosaicMethod maps "3x3" and "bilinear" to the DemosaicMethod
// values.
func ParseDemosaicMethod(s string) (DemosaicMethod, error) {
	switch s {
	case "3x3":
		return Demosaic3x3, nil
	case "bilinear":
		return DemosaicBilinear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedDemosaicMethod, s)
	}
}

// Options configures a conversion. The zero value selects the
// defaults: limited range, BT.601, 3x3 demosaic.
type Options struct {
	Range    Range
	Encoding Encoding
	Demosaic DemosaicMethod
}
