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

import "errors"

var (
	// ErrUnsupportedFormat is returned when a format's color encoding
	// or specific layout has no conversion handler.
	ErrUnsupportedFormat = errors.New("unsupported pixel format")

	// ErrStrideTooSmall is returned when a caller-supplied bytes per
	// line is smaller than the format's natural stride.
	ErrStrideTooSmall = errors.New("bytes per line smaller than natural stride")

	// ErrBufferTooSmall is returned when the input buffer does not
	// cover a full frame.
	ErrBufferTooSmall = errors.New("buffer smaller than frame size")

	// ErrUnsupportedBitDepth is returned for RAW bit depths other
	// than 8, 10, 12 and 16.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

	// ErrUnsupportedDemosaicMethod is returned for a DemosaicMethod
	// value outside the defined set.
	ErrUnsupportedDemosaicMethod = errors.New("unsupported demosaic method")

	// ErrUnknownRange and ErrUnknownEncoding are returned by the
	// string parsers for values outside the defined sets.
	ErrUnknownRange    = errors.New("unknown color range")
	ErrUnknownEncoding = errors.New("unknown color encoding")
)
