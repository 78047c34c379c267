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
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/gopixels/go-pixfmt/pix/work"
)

// rowRunner executes fn over bands covering [0, rows) and returns
// when every band is done.
type rowRunner func(rows int, fn func(y0, y1 int))

// serialRows runs everything on the calling goroutine.
func serialRows(rows int, fn func(y0, y1 int)) {
	if rows > 0 {
		fn(0, rows)
	}
}

var (
	accelerated bool
	pool        *work.Pool
)

func init() {
	accelerated = detectAccel()
	if accelerated {
		pool = work.New(0)
	}
}

// detectAccel decides whether the fused row-parallel backend runs.
// Set PIXFMT_NO_ACCEL=1 to force the reference backend.
func detectAccel() bool {
	if os.Getenv("PIXFMT_NO_ACCEL") != "" {
		return false
	}
	switch runtime.GOARCH {
	case "amd64":
		return cpu.X86.HasAVX2
	case "arm64":
		return cpu.ARM64.HasASIMD
	default:
		return false
	}
}

// Accelerated reports whether the fused backend was selected. Both
// backends produce byte-identical output; the flag only affects
// speed.
func Accelerated() bool {
	return accelerated
}

func activeRunner() rowRunner {
	if accelerated {
		return pool.ParallelRows
	}
	return serialRows
}
