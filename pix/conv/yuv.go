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

// Reference YUV decoders. Each one extracts full-resolution Y, Cb, Cr
// planes first (nearest-neighbor upsampling the chroma) and then runs
// the matrix over them. The base* functions are the ground truth the
// fused backend is verified against.

// extract422 pulls the three channels out of a packed 4:2:2 buffer.
// yOff/uOff/vOff give the byte positions inside each 4-byte group of
// two pixels; each chroma sample is duplicated to its paired pixel.
func extract422(src []byte, w, h, stride, yOff, uOff, vOff int) (y, u, v []uint8) {
	y = make([]uint8, w*h)
	u = make([]uint8, w*h)
	v = make([]uint8, w*h)
	for row := 0; row < h; row++ {
		line := src[row*stride:]
		out := row * w
		for gx := 0; gx < w/2; gx++ {
			g := line[gx*4 : gx*4+4]
			y[out+gx*2] = g[yOff]
			y[out+gx*2+1] = g[yOff+2]
			u[out+gx*2] = g[uOff]
			u[out+gx*2+1] = g[uOff]
			v[out+gx*2] = g[vOff]
			v[out+gx*2+1] = g[vOff]
		}
	}
	return y, u, v
}

// extractSemiplanar pulls the channels out of a semi-planar layout:
// a full-resolution luma plane followed by an interleaved Cb,Cr plane
// subsampled 2x horizontally and vsub vertically.
func extractSemiplanar(src []byte, w, h, vsub int) (y, u, v []uint8) {
	y = make([]uint8, w*h)
	u = make([]uint8, w*h)
	v = make([]uint8, w*h)
	uvPlane := src[w*h:]
	for row := 0; row < h; row++ {
		copy(y[row*w:(row+1)*w], src[row*w:])
		uvLine := uvPlane[(row/vsub)*w:]
		out := row * w
		for x := 0; x < w; x++ {
			u[out+x] = uvLine[(x/2)*2]
			v[out+x] = uvLine[(x/2)*2+1]
		}
	}
	return y, u, v
}

// extract444 pulls the channels out of an interleaved 4:4:4 layout
// with bpp bytes per pixel, Y/Cb/Cr at byte offsets 0/1/2.
func extract444(src []byte, w, h, stride, bpp int) (y, u, v []uint8) {
	y = make([]uint8, w*h)
	u = make([]uint8, w*h)
	v = make([]uint8, w*h)
	for row := 0; row < h; row++ {
		line := src[row*stride:]
		out := row * w
		for x := 0; x < w; x++ {
			y[out+x] = line[x*bpp]
			u[out+x] = line[x*bpp+1]
			v[out+x] = line[x*bpp+2]
		}
	}
	return y, u, v
}

// cscPlanes runs the matrix over full-resolution planes into the
// B,G,R output.
func cscPlanes(dst []byte, y, u, v []uint8, p *cscParams) {
	for i := range y {
		b, g, r := p.pixel(y[i], u[i], v[i])
		dst[i*3] = b
		dst[i*3+1] = g
		dst[i*3+2] = r
	}
}

func baseYUYV(dst, src []byte, w, h, stride int, p *cscParams) {
	y, u, v := extract422(src, w, h, stride, 0, 1, 3)
	cscPlanes(dst, y, u, v, p)
}

func baseUYVY(dst, src []byte, w, h, stride int, p *cscParams) {
	y, u, v := extract422(src, w, h, stride, 1, 0, 2)
	cscPlanes(dst, y, u, v, p)
}

func baseSemiplanar(dst, src []byte, w, h, vsub int, p *cscParams) {
	y, u, v := extractSemiplanar(src, w, h, vsub)
	cscPlanes(dst, y, u, v, p)
}

func base444(dst, src []byte, w, h, stride, bpp int, p *cscParams) {
	y, u, v := extract444(src, w, h, stride, bpp)
	cscPlanes(dst, y, u, v, p)
}

func baseY8(dst, src []byte, w, h, stride int, r Range) {
	for row := 0; row < h; row++ {
		line := src[row*stride:]
		out := dst[row*w*3:]
		for x := 0; x < w; x++ {
			v := lumaPixel(line[x], r)
			out[x*3] = v
			out[x*3+1] = v
			out[x*3+2] = v
		}
	}
}
