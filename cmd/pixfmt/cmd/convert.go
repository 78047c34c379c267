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

package cmd

import (
	"compress/gzip"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopixels/go-pixfmt/pix"
	"github.com/gopixels/go-pixfmt/pix/conv"
	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
)

func NewConvertCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "decode a raw frame to BGR888",
		Long: "decode a raw frame to BGR888 and write it as .png, .bmp or raw bytes;\n" +
			"FILE may be - for stdin, a .gz suffix is decompressed on the fly",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("format")
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			bpl, _ := cmd.Flags().GetInt("bytes-per-line")
			out, _ := cmd.Flags().GetString("output")

			f, err := pix.FindByName(name)
			if err != nil {
				return err
			}
			opts, err := parseConvOptions(cmd)
			if err != nil {
				return err
			}

			buf, err := readFrame(args[0])
			if err != nil {
				return err
			}
			slog.DebugContext(ctx, "frame loaded",
				"format", f, "width", width, "height", height,
				"bytes", len(buf), "accelerated", conv.Accelerated())

			bgr, err := conv.BufferToBGR888(f, width, height, bpl, buf, opts)
			if err != nil {
				return err
			}
			return writeFrame(out, bgr, width, height)
		},
	}
	pf := cmd.Flags()
	pf.StringP("format", "f", "", "source pixel format name (see pixfmt formats)")
	pf.IntP("width", "W", 640, "frame width in pixels")
	pf.IntP("height", "H", 480, "frame height in pixels")
	pf.Int("bytes-per-line", 0, "source row stride, 0 derives it from the format")
	pf.StringP("output", "o", "out.png", "output path (.png, .bmp, anything else is raw BGR888)")
	pf.String("range", "limited", "YCbCr quantization range (limited|full)")
	pf.String("encoding", "bt601", "YCbCr encoding (bt601|bt709|bt2020)")
	pf.String("demosaic", "3x3", "Bayer demosaic method (3x3|bilinear)")
	cmd.MarkFlagRequired("format")
	return cmd
}

func parseConvOptions(cmd *cobra.Command) (conv.Options, error) {
	var opts conv.Options
	var err error

	rng, _ := cmd.Flags().GetString("range")
	if opts.Range, err = conv.ParseRange(rng); err != nil {
		return opts, err
	}
	enc, _ := cmd.Flags().GetString("encoding")
	if opts.Encoding, err = conv.ParseEncoding(enc); err != nil {
		return opts, err
	}
	dm, _ := cmd.Flags().GetString("demosaic")
	if opts.Demosaic, err = conv.ParseDemosaicMethod(dm); err != nil {
		return opts, err
	}
	return opts, nil
}

func readFrame(path string) ([]byte, error) {
	var in io.Reader
	if path == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(in)
		if err != nil {
			return nil, fmt.Errorf("open gzip %s: %w", path, err)
		}
		defer gz.Close()
		in = gz
	}
	return io.ReadAll(in)
}

func writeFrame(path string, bgr []byte, w, h int) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	switch filepath.Ext(path) {
	case ".png":
		return png.Encode(out, bgrImage(bgr, w, h))
	case ".bmp":
		return bmp.Encode(out, bgrImage(bgr, w, h))
	default:
		_, err := out.Write(bgr)
		return err
	}
}

func bgrImage(bgr []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		img.Pix[i*4+0] = bgr[i*3+2]
		img.Pix[i*4+1] = bgr[i*3+1]
		img.Pix[i*4+2] = bgr[i*3+0]
		img.Pix[i*4+3] = 0xFF
	}
	return img
}
