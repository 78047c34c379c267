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
	"strings"

	"github.com/gopixels/go-pixfmt/pix/conv"
	"github.com/spf13/cobra"
)

func NewCSCCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csc",
		Short: "print a YCbCr to BGR conversion matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, _ := cmd.Flags().GetString("encoding")
			rng, _ := cmd.Flags().GetString("range")

			e, err := conv.ParseEncoding(enc)
			if err != nil {
				return err
			}
			r, err := conv.ParseRange(rng)
			if err != nil {
				return err
			}
			off, m, err := conv.MatrixFor(e, r)
			if err != nil {
				return err
			}

			in := [3]string{"Y", "Cb", "Cr"}
			out := [3]string{"B", "G", "R"}
			fmt.Printf("%s %s range\n\nMatrix:\n", e, r)
			for i := range m {
				var terms []string
				for j, v := range m[i] {
					if v != 0 {
						terms = append(terms, fmt.Sprintf("%.6f*%s", v, in[j]))
					}
				}
				fmt.Printf("  %s = %s\n", out[i], strings.Join(terms, " + "))
			}
			fmt.Printf("\nOffsets (applied to input):\n")
			for j, v := range off {
				if v != 0 {
					fmt.Printf("  %s: %g\n", in[j], v)
				}
			}
			return nil
		},
	}
	pf := cmd.Flags()
	pf.String("encoding", "bt601", "YCbCr encoding (bt601|bt709|bt2020)")
	pf.String("range", "limited", "YCbCr quantization range (limited|full)")
	return cmd
}
