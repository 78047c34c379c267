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
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gopixels/go-pixfmt/pix"
	"github.com/spf13/cobra"
)

func NewFormatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "list the known pixel formats",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			if meta, _ := cmd.Flags().GetBool("meta"); meta {
				fmt.Fprintln(w, "NAME\tV4L2\tPIX/GROUP\tBYTES/GROUP")
				for _, m := range pix.AllMeta() {
					fmt.Fprintf(w, "%s\t%s\t%d\t%d\n",
						m.Name, fccString(m.V4L2FourCC), m.PixelsPerGroup, m.BytesPerGroup)
				}
				return
			}

			fmt.Fprintln(w, "NAME\tCOLOR\tDRM\tV4L2\tGROUP\tPLANES\tPACKED")
			for _, f := range pix.All() {
				packed := ""
				if f.Packed {
					packed = "packed"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dx%d\t%d\t%s\n",
					f.Name, f.Color, fccString(f.DRMFourCC), fccString(f.V4L2FourCC),
					f.GroupX, f.GroupY, len(f.Planes), packed)
			}
		},
	}
	cmd.Flags().Bool("meta", false, "list the metadata formats instead")
	return cmd
}

// fccString renders an unassigned fourcc as "-" rather than four NUL
// bytes.
func fccString(f pix.FourCC) string {
	if f == 0 {
		return "-"
	}
	return f.String()
}
