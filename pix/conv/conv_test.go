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

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gopixels/go-pixfmt/pix"
)

func TestBGR888Identity(t *testing.T) {
	src := make([]byte, 4*2*3)
	for i := range src {
		src[i] = byte(i * 13)
	}
	got, err := BufferToBGR888(pix.BGR888, 4, 2, 0, src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, src) {
		t.Errorf("BGR888 conversion is not the identity:\ngot  %v\nwant %v", got, src)
	}
	// The output is a fresh buffer, never an alias of the input.
	got[0] ^= 0xFF
	if src[0] == got[0] {
		t.Error("output aliases the input buffer")
	}
}

func TestRGB888ChannelSwap(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6}
	want := []byte{3, 2, 1, 6, 5, 4}
	got, err := BufferToBGR888(pix.RGB888, 2, 1, 0, src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRGBAlphaDrop(t *testing.T) {
	// One pixel in each 32-bit ordering, all encoding B=1 G=2 R=3.
	tests := []struct {
		format *pix.PixelFormat
		src    []byte
	}{
		{pix.XRGB8888, []byte{1, 2, 3, 0xAA}},
		{pix.ARGB8888, []byte{1, 2, 3, 0xAA}},
		{pix.XBGR8888, []byte{3, 2, 1, 0xAA}},
		{pix.ABGR8888, []byte{3, 2, 1, 0xAA}},
		{pix.RGBX8888, []byte{0xAA, 1, 2, 3}},
		{pix.RGBA8888, []byte{0xAA, 1, 2, 3}},
	}
	for _, tc := range tests {
		got, err := BufferToBGR888(tc.format, 1, 1, 0, tc.src, Options{})
		if err != nil {
			t.Fatalf("%s: %v", tc.format, err)
		}
		if !bytes.Equal(got, []byte{1, 2, 3}) {
			t.Errorf("%s: got %v, want [1 2 3]", tc.format, got)
		}
	}
}

func TestXBGR2101010(t *testing.T) {
	// R=0x3FF G=0x200 B=0x0FF, little-endian 32-bit word.
	v := uint32(0x3FF) | uint32(0x200)<<10 | uint32(0x0FF)<<20
	src := []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	got, err := BufferToBGR888(pix.XBGR2101010, 1, 1, 0, src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x0FF >> 2, 0x200 >> 2, 0x3FF >> 2}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestVUY888(t *testing.T) {
	// 4:4:4 with Y,Cb,Cr bytes per pixel; (126,128,128) is mid grey.
	got, err := BufferToBGR888(pix.VUY888, 1, 1, 0, []byte{126, 128, 128}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{128, 128, 128}) {
		t.Errorf("got %v, want [128 128 128]", got)
	}

	got, err = BufferToBGR888(pix.XVUY8888, 1, 1, 0, []byte{235, 128, 128, 0xAA}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{255, 255, 255}) {
		t.Errorf("got %v, want [255 255 255]", got)
	}
}

func TestY8(t *testing.T) {
	src := []byte{16, 126, 235, 255}
	got, err := BufferToBGR888(pix.Y8, 4, 1, 0, src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0, 0, 0, 128, 128, 128, 255, 255, 255, 255, 255, 255}
	if !bytes.Equal(got, want) {
		t.Errorf("limited: got %v, want %v", got, want)
	}

	got, err = BufferToBGR888(pix.Y8, 4, 1, 0, src, Options{Range: RangeFull})
	if err != nil {
		t.Fatal(err)
	}
	want = []byte{16, 16, 16, 126, 126, 126, 235, 235, 235, 255, 255, 255}
	if !bytes.Equal(got, want) {
		t.Errorf("full: got %v, want %v", got, want)
	}
}

func TestBytesPerLinePadding(t *testing.T) {
	// Two BGR888 rows of 2 pixels with 2 padding bytes per row.
	src := []byte{
		1, 2, 3, 4, 5, 6, 0xEE, 0xEE,
		7, 8, 9, 10, 11, 12, 0xEE, 0xEE,
	}
	got, err := BufferToBGR888(pix.BGR888, 2, 2, 8, src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDispatchErrors(t *testing.T) {
	buf := make([]byte, 64*64*4)

	t.Run("stride too small", func(t *testing.T) {
		_, err := BufferToBGR888(pix.BGR888, 64, 64, 64*3-1, buf, Options{})
		if !errors.Is(err, ErrStrideTooSmall) {
			t.Errorf("error = %v, want ErrStrideTooSmall", err)
		}
	})
	t.Run("buffer too small", func(t *testing.T) {
		_, err := BufferToBGR888(pix.BGR888, 64, 64, 0, buf[:64*64*3-1], Options{})
		if !errors.Is(err, ErrBufferTooSmall) {
			t.Errorf("error = %v, want ErrBufferTooSmall", err)
		}
	})
	t.Run("multiplane custom stride", func(t *testing.T) {
		_, err := BufferToBGR888(pix.NV12, 64, 64, 128, buf, Options{})
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})
	t.Run("unhandled RGB layout", func(t *testing.T) {
		_, err := BufferToBGR888(pix.RGB565, 64, 64, 0, buf, Options{})
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})
	t.Run("unhandled YUV layout", func(t *testing.T) {
		_, err := BufferToBGR888(pix.MJPEG, 64, 64, 0, buf, Options{})
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})
	t.Run("unaligned dimensions", func(t *testing.T) {
		_, err := BufferToBGR888(pix.YUYV, 63, 64, 0, buf, Options{})
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("odd width error = %v, want ErrUnsupportedFormat", err)
		}
		_, err = BufferToBGR888(pix.NV12, 64, 63, 0, buf, Options{})
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("odd height error = %v, want ErrUnsupportedFormat", err)
		}
	})
	t.Run("unsupported bit depth", func(t *testing.T) {
		odd := &pix.PixelFormat{
			Name: "SRGGB14", Color: pix.ColorRAW, GroupX: 2, GroupY: 2,
			Planes: []pix.PlaneInfo{{BytesPerGroup: 4, HorizSubsampling: 1, VertSubsampling: 1}},
		}
		_, err := BufferToBGR888(odd, 64, 64, 0, buf, Options{})
		if !errors.Is(err, ErrUnsupportedBitDepth) {
			t.Errorf("error = %v, want ErrUnsupportedBitDepth", err)
		}
	})
	t.Run("unsupported demosaic method", func(t *testing.T) {
		_, err := BufferToBGR888(pix.SRGGB8, 64, 64, 0, buf, Options{Demosaic: DemosaicMethod(9)})
		if !errors.Is(err, ErrUnsupportedDemosaicMethod) {
			t.Errorf("error = %v, want ErrUnsupportedDemosaicMethod", err)
		}
	})
	t.Run("unknown encoding", func(t *testing.T) {
		_, err := BufferToBGR888(pix.YUYV, 64, 64, 0, buf, Options{Encoding: Encoding(9)})
		if !errors.Is(err, ErrUnknownEncoding) {
			t.Errorf("error = %v, want ErrUnknownEncoding", err)
		}
	})
}

func TestRawBytesPerLine(t *testing.T) {
	// SRGGB8 rows padded to 8 bytes for a 4-pixel-wide mosaic; the
	// padding must not leak into the demosaic.
	tight := mosaic4x4
	padded := make([]byte, 0, 4*8)
	for y := 0; y < 4; y++ {
		padded = append(padded, tight[y*4:(y+1)*4]...)
		padded = append(padded, 0xEE, 0xEE, 0xEE, 0xEE)
	}
	want, err := BufferToBGR888(pix.SRGGB8, 4, 4, 0, tight, Options{})
	if err != nil {
		t.Fatal(err)
	}
	got, err := BufferToBGR888(pix.SRGGB8, 4, 4, 8, padded, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("padded conversion differs:\ngot  %v\nwant %v", got, want)
	}
}
