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

// Package pix describes pixel formats and their memory geometry.
//
// A PixelFormat captures the byte layout of one wire or memory format:
// how many pixels form the minimal byte-aligned group, how many memory
// planes the format uses, and how chroma (or other) samples are
// subsampled per plane. From that, stride, plane size and frame size
// follow for any width, height and alignment.
//
// The format catalog is a static table built at package init. Formats
// are immutable values, safe to share across goroutines, and are looked
// up by name or by DRM/V4L2 fourcc:
//
//	fmt, err := pix.FindByName("NV12")
//	if err != nil { ... }
//	size := fmt.FrameSize(1920, 1080, 1)
//
// Conversion of raw frame buffers to BGR888 lives in pix/conv.
package pix
