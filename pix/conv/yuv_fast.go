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

// Fused YUV decoders: no intermediate planes, one pass per pixel,
// rows split across the worker pool. The arithmetic per pixel is the
// same cscParams.pixel call the reference path makes, so the output
// is byte-identical.

func fastYUYV(dst, src []byte, w, h, stride int, p *cscParams, run rowRunner) {
	run(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			line := src[y*stride:]
			out := dst[y*w*3:]
			for gx := 0; gx < w/2; gx++ {
				g := line[gx*4 : gx*4+4]
				u, v := g[1], g[3]
				b0, g0, r0 := p.pixel(g[0], u, v)
				b1, g1, r1 := p.pixel(g[2], u, v)
				o := out[gx*6 : gx*6+6]
				o[0], o[1], o[2] = b0, g0, r0
				o[3], o[4], o[5] = b1, g1, r1
			}
		}
	})
}

func fastUYVY(dst, src []byte, w, h, stride int, p *cscParams, run rowRunner) {
	run(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			line := src[y*stride:]
			out := dst[y*w*3:]
			for gx := 0; gx < w/2; gx++ {
				g := line[gx*4 : gx*4+4]
				u, v := g[0], g[2]
				b0, g0, r0 := p.pixel(g[1], u, v)
				b1, g1, r1 := p.pixel(g[3], u, v)
				o := out[gx*6 : gx*6+6]
				o[0], o[1], o[2] = b0, g0, r0
				o[3], o[4], o[5] = b1, g1, r1
			}
		}
	})
}

func fastSemiplanar(dst, src []byte, w, h, vsub int, p *cscParams, run rowRunner) {
	uvPlane := src[w*h:]
	run(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			line := src[y*w:]
			uvLine := uvPlane[(y/vsub)*w:]
			out := dst[y*w*3:]
			for x := 0; x < w; x++ {
				u := uvLine[(x/2)*2]
				v := uvLine[(x/2)*2+1]
				b, g, r := p.pixel(line[x], u, v)
				out[x*3] = b
				out[x*3+1] = g
				out[x*3+2] = r
			}
		}
	})
}

func fast444(dst, src []byte, w, h, stride, bpp int, p *cscParams, run rowRunner) {
	run(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			line := src[y*stride:]
			out := dst[y*w*3:]
			for x := 0; x < w; x++ {
				b, g, r := p.pixel(line[x*bpp], line[x*bpp+1], line[x*bpp+2])
				out[x*3] = b
				out[x*3+1] = g
				out[x*3+2] = r
			}
		}
	})
}

func fastY8(dst, src []byte, w, h, stride int, cr Range, run rowRunner) {
	run(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			line := src[y*stride:]
			out := dst[y*w*3:]
			for x := 0; x < w; x++ {
				v := lumaPixel(line[x], cr)
				out[x*3] = v
				out[x*3+1] = v
				out[x*3+2] = v
			}
		}
	})
}
