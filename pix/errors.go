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

import "errors"

var (
	// ErrFormatNotFound is returned by the registry lookups when no
	// format matches the requested name or fourcc.
	ErrFormatNotFound = errors.New("pixel format not found")

	// ErrInvalidFourcc is returned when a fourcc string is not exactly
	// four bytes long.
	ErrInvalidFourcc = errors.New("invalid fourcc string")

	// ErrInvalidPlane is returned when a plane index is out of range
	// for the format.
	ErrInvalidPlane = errors.New("plane index out of range")
)
