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
	"errors"
	"fmt"

	"github.com/gopixels/go-pixfmt/pix"
	"github.com/spf13/cobra"
)

func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info NAME",
		Short: "show the memory geometry of a format at a given size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			align, _ := cmd.Flags().GetInt("align")

			f, err := pix.FindByName(args[0])
			if err != nil {
				if !errors.Is(err, pix.ErrFormatNotFound) {
					return err
				}
				m, merr := pix.FindMetaByName(args[0])
				if merr != nil {
					return err
				}
				fmt.Printf("%s  v4l2=%s  group=%dpx/%dB\n",
					m.Name, fccString(m.V4L2FourCC), m.PixelsPerGroup, m.BytesPerGroup)
				fmt.Printf("%dx%d align=%d: stride=%d buffer=%d\n",
					width, height, align, m.Stride(width, align), m.BufferSize(width, height, align))
				return nil
			}

			fmt.Printf("%s  color=%s  drm=%s  v4l2=%s  group=%dx%d\n",
				f.Name, f.Color, fccString(f.DRMFourCC), fccString(f.V4L2FourCC), f.GroupX, f.GroupY)
			fmt.Printf("%dx%d align=%d:\n", width, height, align)
			for i := range f.Planes {
				stride, err := f.Stride(width, i, align)
				if err != nil {
					return err
				}
				size, err := f.PlaneSize(stride, height, i)
				if err != nil {
					return err
				}
				fmt.Printf("  plane %d: stride=%d size=%d\n", i, stride, size)
			}
			fmt.Printf("  frame: %d bytes\n", f.FrameSize(width, height, align))
			return nil
		},
	}
	pf := cmd.Flags()
	pf.IntP("width", "W", 1920, "frame width in pixels")
	pf.IntP("height", "H", 1080, "frame height in pixels")
	pf.Int("align", 1, "stride alignment in bytes")
	return cmd
}
