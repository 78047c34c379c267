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

// The format catalog. Fourcc comments give the DRM and V4L2 macro the
// code comes from where the naming is not obvious.

// RGB, 16 bits per pixel, no alpha.
var (
	RGB565 = &PixelFormat{
		Name: "RGB565", DRMFourCC: fourcc("RG16"), V4L2FourCC: fourcc("RGBP"),
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{2, 1, 1}},
	}
	XRGB1555 = &PixelFormat{
		Name: "XRGB1555", DRMFourCC: fourcc("XR15"), // DRM_FORMAT_XRGB1555
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{2, 1, 1}},
	}
	RGBX4444 = &PixelFormat{
		Name: "RGBX4444", DRMFourCC: fourcc("RX12"), // DRM_FORMAT_RGBX4444
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{2, 1, 1}},
	}
	XRGB4444 = &PixelFormat{
		Name: "XRGB4444", DRMFourCC: fourcc("XR12"), // DRM_FORMAT_XRGB4444
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{2, 1, 1}},
	}
)

// RGB, 16 bits per pixel, alpha.
var (
	ARGB1555 = &PixelFormat{
		Name: "ARGB1555", DRMFourCC: fourcc("AR15"), // DRM_FORMAT_ARGB1555
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{2, 1, 1}},
	}
	RGBA4444 = &PixelFormat{
		Name: "RGBA4444", DRMFourCC: fourcc("RA12"), // DRM_FORMAT_RGBA4444
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{2, 1, 1}},
	}
	ARGB4444 = &PixelFormat{
		Name: "ARGB4444", DRMFourCC: fourcc("AR12"), // DRM_FORMAT_ARGB4444
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{2, 1, 1}},
	}
)

// RGB, 24 bits per pixel. Names list components from most to least
// significant, so the first byte in memory is B for BGR888 and R for
// RGB888.
var (
	RGB888 = &PixelFormat{
		Name: "RGB888", DRMFourCC: fourcc("RG24"), V4L2FourCC: fourcc("BGR3"),
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{3, 1, 1}},
	}
	BGR888 = &PixelFormat{
		Name: "BGR888", DRMFourCC: fourcc("BG24"), V4L2FourCC: fourcc("RGB3"),
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{3, 1, 1}},
	}
)

// RGB, 32 bits per pixel, no alpha.
var (
	XRGB8888 = &PixelFormat{
		Name: "XRGB8888", DRMFourCC: fourcc("XR24"), V4L2FourCC: fourcc("XR24"),
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
	XBGR8888 = &PixelFormat{
		Name: "XBGR8888", DRMFourCC: fourcc("XB24"), V4L2FourCC: fourcc("XB24"),
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
	RGBX8888 = &PixelFormat{
		Name: "RGBX8888", DRMFourCC: fourcc("RX24"), V4L2FourCC: fourcc("RX24"),
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
	XBGR2101010 = &PixelFormat{
		Name: "XBGR2101010", DRMFourCC: fourcc("XB30"), V4L2FourCC: fourcc("RX30"),
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
)

// RGB, 32 bits per pixel, alpha.
var (
	ARGB8888 = &PixelFormat{
		Name: "ARGB8888", DRMFourCC: fourcc("AR24"), V4L2FourCC: fourcc("AR24"),
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
	ABGR8888 = &PixelFormat{
		Name: "ABGR8888", DRMFourCC: fourcc("AB24"), V4L2FourCC: fourcc("AB24"),
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
	RGBA8888 = &PixelFormat{
		Name: "RGBA8888", DRMFourCC: fourcc("RA24"), V4L2FourCC: fourcc("RA24"),
		Color: ColorRGB, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
)

// YUV, semi-planar and packed 4:2:2.
var (
	NV12 = &PixelFormat{
		Name: "NV12", DRMFourCC: fourcc("NV12"), V4L2FourCC: fourcc("NM12"),
		Color: ColorYUV, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{2, 1, 1}, {2, 2, 2}},
	}
	NV16 = &PixelFormat{
		Name: "NV16", DRMFourCC: fourcc("NV16"), V4L2FourCC: fourcc("NM16"),
		Color: ColorYUV, GroupX: 2, GroupY: 1,
		Planes: []PlaneInfo{{2, 1, 1}, {2, 2, 1}},
	}
	YUYV = &PixelFormat{
		Name: "YUYV", DRMFourCC: fourcc("YUYV"), V4L2FourCC: fourcc("YUYV"),
		Color: ColorYUV, GroupX: 2, GroupY: 1,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
	UYVY = &PixelFormat{
		Name: "UYVY", DRMFourCC: fourcc("UYVY"), V4L2FourCC: fourcc("UYVY"),
		Color: ColorYUV, GroupX: 2, GroupY: 1,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
)

// YUV 4:4:4.
var (
	VUY888 = &PixelFormat{
		Name: "VUY888", DRMFourCC: fourcc("VU24"), V4L2FourCC: fourcc("YUV3"),
		Color: ColorYUV, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{3, 1, 1}},
	}
	XVUY8888 = &PixelFormat{
		Name: "XVUY8888", DRMFourCC: fourcc("XVUY"), V4L2FourCC: fourcc("YUVX"),
		Color: ColorYUV, GroupX: 1, GroupY: 1,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
)

// Y8 is luma only.
var Y8 = &PixelFormat{
	Name: "Y8", V4L2FourCC: fourcc("GREY"),
	Color: ColorYUV, GroupX: 1, GroupY: 1,
	Planes: []PlaneInfo{{1, 1, 1}},
}

// RAW Bayer, 8 bits per sample.
var (
	SBGGR8 = &PixelFormat{
		Name: "SBGGR8", V4L2FourCC: fourcc("BA81"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{2, 1, 1}},
	}
	SGBRG8 = &PixelFormat{
		Name: "SGBRG8", V4L2FourCC: fourcc("GBRG"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{2, 1, 1}},
	}
	SGRBG8 = &PixelFormat{
		Name: "SGRBG8", V4L2FourCC: fourcc("GRBG"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{2, 1, 1}},
	}
	SRGGB8 = &PixelFormat{
		Name: "SRGGB8", V4L2FourCC: fourcc("RGGB"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{2, 1, 1}},
	}
)

// RAW Bayer, 10 bits per sample stored in 16-bit words.
var (
	SBGGR10 = &PixelFormat{
		Name: "SBGGR10", V4L2FourCC: fourcc("BG10"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
	SGBRG10 = &PixelFormat{
		Name: "SGBRG10", V4L2FourCC: fourcc("GB10"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
	SGRBG10 = &PixelFormat{
		Name: "SGRBG10", V4L2FourCC: fourcc("BA10"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
	SRGGB10 = &PixelFormat{
		Name: "SRGGB10", V4L2FourCC: fourcc("RG10"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
)

// RAW Bayer, 10 bits per sample, CSI-2 packed: 4 samples in 5 bytes.
var (
	SBGGR10P = &PixelFormat{
		Name: "SBGGR10P", V4L2FourCC: fourcc("pBAA"),
		Color: ColorRAW, Packed: true, GroupX: 4, GroupY: 2,
		Planes: []PlaneInfo{{5, 1, 1}},
	}
	SGBRG10P = &PixelFormat{
		Name: "SGBRG10P", V4L2FourCC: fourcc("pGAA"),
		Color: ColorRAW, Packed: true, GroupX: 4, GroupY: 2,
		Planes: []PlaneInfo{{5, 1, 1}},
	}
	SGRBG10P = &PixelFormat{
		Name: "SGRBG10P", V4L2FourCC: fourcc("pgAA"),
		Color: ColorRAW, Packed: true, GroupX: 4, GroupY: 2,
		Planes: []PlaneInfo{{5, 1, 1}},
	}
	SRGGB10P = &PixelFormat{
		Name: "SRGGB10P", V4L2FourCC: fourcc("pRAA"),
		Color: ColorRAW, Packed: true, GroupX: 4, GroupY: 2,
		Planes: []PlaneInfo{{5, 1, 1}},
	}
)

// RAW Bayer, 12 bits per sample stored in 16-bit words.
var (
	SBGGR12 = &PixelFormat{
		Name: "SBGGR12", V4L2FourCC: fourcc("BG12"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
	SGBRG12 = &PixelFormat{
		Name: "SGBRG12", V4L2FourCC: fourcc("GB12"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
	SGRBG12 = &PixelFormat{
		Name: "SGRBG12", V4L2FourCC: fourcc("BA12"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
	SRGGB12 = &PixelFormat{
		Name: "SRGGB12", V4L2FourCC: fourcc("RG12"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
)

// RAW Bayer, 12 bits per sample, CSI-2 packed: 2 samples in 3 bytes.
var (
	SBGGR12P = &PixelFormat{
		Name: "SBGGR12P", V4L2FourCC: fourcc("pBCC"),
		Color: ColorRAW, Packed: true, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{3, 1, 1}},
	}
	SGBRG12P = &PixelFormat{
		Name: "SGBRG12P", V4L2FourCC: fourcc("pGCC"),
		Color: ColorRAW, Packed: true, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{3, 1, 1}},
	}
	SGRBG12P = &PixelFormat{
		Name: "SGRBG12P", V4L2FourCC: fourcc("pgCC"),
		Color: ColorRAW, Packed: true, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{3, 1, 1}},
	}
	SRGGB12P = &PixelFormat{
		Name: "SRGGB12P", V4L2FourCC: fourcc("pRCC"),
		Color: ColorRAW, Packed: true, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{3, 1, 1}},
	}
)

// RAW Bayer, 16 bits per sample.
var (
	SBGGR16 = &PixelFormat{
		Name: "SBGGR16", V4L2FourCC: fourcc("BYR2"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
	SGBRG16 = &PixelFormat{
		Name: "SGBRG16", V4L2FourCC: fourcc("GB16"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
	SGRBG16 = &PixelFormat{
		Name: "SGRBG16", V4L2FourCC: fourcc("GR16"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
	SRGGB16 = &PixelFormat{
		Name: "SRGGB16", V4L2FourCC: fourcc("RG16"),
		Color: ColorRAW, GroupX: 2, GroupY: 2,
		Planes: []PlaneInfo{{4, 1, 1}},
	}
)

// MJPEG frames have no fixed geometry; the descriptor exists so that
// capture devices reporting the fourcc can still be identified.
var MJPEG = &PixelFormat{
	Name: "MJPEG", DRMFourCC: fourcc("MJPG"), V4L2FourCC: fourcc("MJPG"),
	Color: ColorYUV, GroupX: 1, GroupY: 1,
	Planes: []PlaneInfo{{1, 1, 1}},
}

var formats = []*PixelFormat{
	RGB565, XRGB1555, RGBX4444, XRGB4444,
	ARGB1555, RGBA4444, ARGB4444,
	RGB888, BGR888,
	XRGB8888, XBGR8888, RGBX8888, XBGR2101010,
	ARGB8888, ABGR8888, RGBA8888,
	NV12, NV16, YUYV, UYVY,
	VUY888, XVUY8888, Y8,
	SBGGR8, SGBRG8, SGRBG8, SRGGB8,
	SBGGR10, SGBRG10, SGRBG10, SRGGB10,
	SBGGR10P, SGBRG10P, SGRBG10P, SRGGB10P,
	SBGGR12, SGBRG12, SGRBG12, SRGGB12,
	SBGGR12P, SGBRG12P, SGRBG12P, SRGGB12P,
	SBGGR16, SGBRG16, SGRBG16, SRGGB16,
	MJPEG,
}

// All returns the format catalog in declaration order. The returned
// slice is shared; callers must not modify it.
func All() []*PixelFormat {
	return formats
}
