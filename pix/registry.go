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

var (
	byName     = make(map[string]*PixelFormat)
	byDRM      = make(map[FourCC]*PixelFormat)
	byV4L2     = make(map[FourCC]*PixelFormat)
	byMetaName = make(map[string]*MetaFormat)
)

func init() {
	for _, f := range formats {
		if _, dup := byName[f.Name]; dup {
			panic("duplicate format name " + f.Name)
		}
		byName[f.Name] = f
		if f.DRMFourCC != 0 {
			if _, dup := byDRM[f.DRMFourCC]; dup {
				panic("duplicate DRM fourcc " + f.DRMFourCC.String())
			}
			byDRM[f.DRMFourCC] = f
		}
		if f.V4L2FourCC != 0 {
			if _, dup := byV4L2[f.V4L2FourCC]; dup {
				panic("duplicate V4L2 fourcc " + f.V4L2FourCC.String())
			}
			byV4L2[f.V4L2FourCC] = f
		}
	}
	for _, m := range metaFormats {
		if _, dup := byMetaName[m.Name]; dup {
			panic("duplicate meta format name " + m.Name)
		}
		byMetaName[m.Name] = m
	}
}

// FindByName looks up a format by its catalog name.
func FindByName(name string) (*PixelFormat, error) {
	f, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormatNotFound, name)
	}
	return f, nil
}

// FindByDRMFourCC looks up a format by its DRM fourcc.
func FindByDRMFourCC(f FourCC) (*PixelFormat, error) {
	pf, ok := byDRM[f]
	if !ok {
		return nil, fmt.Errorf("%w: DRM fourcc %q", ErrFormatNotFound, f.String())
	}
	return pf, nil
}

// FindByV4L2FourCC looks up a format by its V4L2 fourcc.
func FindByV4L2FourCC(f FourCC) (*PixelFormat, error) {
	pf, ok := byV4L2[f]
	if !ok {
		return nil, fmt.Errorf("%w: V4L2 fourcc %q", ErrFormatNotFound, f.String())
	}
	return pf, nil
}
