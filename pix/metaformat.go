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

// MetaFormat describes a metadata stream layout. Metadata buffers are
// single plane and never vertically subsampled, so the geometry is a
// simpler pixels-per-group/bytes-per-group pair.
type MetaFormat struct {
	Name       string
	V4L2FourCC FourCC

	PixelsPerGroup int
	BytesPerGroup  int
}

func (m *MetaFormat) String() string {
	return m.Name
}

// Stride returns the byte distance between consecutive rows for the
// given width, rounded up to align bytes.
func (m *MetaFormat) Stride(width, align int) int {
	if align < 1 {
		align = 1
	}
	stride := (width + m.PixelsPerGroup - 1) / m.PixelsPerGroup * m.BytesPerGroup
	return (stride + align - 1) / align * align
}

// BufferSize returns the byte size of a width x height metadata buffer.
func (m *MetaFormat) BufferSize(width, height, align int) int {
	return m.Stride(width, align) * height
}

var (
	MetaGeneric8     = &MetaFormat{Name: "GENERIC_8", V4L2FourCC: fourcc("MET8"), PixelsPerGroup: 2, BytesPerGroup: 2}
	MetaGenericCSI10 = &MetaFormat{Name: "GENERIC_CSI2_10", V4L2FourCC: fourcc("MC1A"), PixelsPerGroup: 4, BytesPerGroup: 5}
	MetaGenericCSI12 = &MetaFormat{Name: "GENERIC_CSI2_12", V4L2FourCC: fourcc("MC1C"), PixelsPerGroup: 2, BytesPerGroup: 3}
	MetaRPiFECfg     = &MetaFormat{Name: "RPI_FE_CFG", V4L2FourCC: fourcc("RPFC"), PixelsPerGroup: 1, BytesPerGroup: 1}
	MetaRPiFEStats   = &MetaFormat{Name: "RPI_FE_STATS", V4L2FourCC: fourcc("RPFS"), PixelsPerGroup: 1, BytesPerGroup: 1}
)

var metaFormats = []*MetaFormat{
	MetaGeneric8, MetaGenericCSI10, MetaGenericCSI12,
	MetaRPiFECfg, MetaRPiFEStats,
}

// AllMeta returns the metadata format catalog in declaration order.
func AllMeta() []*MetaFormat {
	return metaFormats
}

// FindMetaByName looks up a metadata format by name.
func FindMetaByName(name string) (*MetaFormat, error) {
	m, ok := byMetaName[name]
	if !ok {
		return nil, fmt.Errorf("%w: meta format %q", ErrFormatNotFound, name)
	}
	return m, nil
}

// FindMetaByV4L2FourCC looks up a metadata format by its V4L2 fourcc.
func FindMetaByV4L2FourCC(f FourCC) (*MetaFormat, error) {
	for _, m := range metaFormats {
		if m.V4L2FourCC == f {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: meta fourcc %q", ErrFormatNotFound, f.String())
}
