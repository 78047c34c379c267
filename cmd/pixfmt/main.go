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

// Command pixfmt inspects the pixel format catalog and converts raw
// camera or display frames to BGR888.
//
// Usage:
//
//	pixfmt formats                             # list the catalog
//	pixfmt info SRGGB10P -W 1920 -H 1080       # geometry of a frame
//	pixfmt convert -f YUYV -W 640 -H 480 frame.raw -o frame.png
//	pixfmt csc --encoding bt709 --range limited
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gopixels/go-pixfmt/cmd/pixfmt/cmd"
)

// GitSHA is stamped at build time via -ldflags "-X main.GitSHA=...".
var GitSHA = "dev"

func main() {
	ctx, cnc := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cnc()
	if err := cmd.NewRoot(ctx, GitSHA).Execute(); err != nil {
		os.Exit(1)
	}
}
