// Copyright 2026 The hash-tool Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/atikktokk/hash-tool/pkg/hashing"
	"github.com/atikktokk/hash-tool/pkg/utils"
)

var _ hashing.Observer = (*progressReporter)(nil)

// progressReporter renders per-file hashing progress on one terminal line,
// throttled so large files do not flood the output. It synchronizes
// internally because batch workers may notify concurrently.
type progressReporter struct {
	mu         sync.Mutex
	w          io.Writer
	lastTick   time.Time
	minTickGap time.Duration
	dirty      bool
}

func newProgressReporter(w io.Writer) *progressReporter {
	return &progressReporter{
		w:          w,
		minTickGap: 150 * time.Millisecond,
	}
}

// FileStarted implements hashing.Observer.
func (r *progressReporter) FileStarted(name string, totalBytes int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clearLine()
	fmt.Fprintf(r.w, "hashing %s (%s)\n", name, utils.FormatFileSize(totalBytes))
}

// FileProgress implements hashing.Observer.
func (r *progressReporter) FileProgress(name string, bytesProcessed, totalBytes int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if now.Sub(r.lastTick) < r.minTickGap && bytesProcessed < totalBytes {
		return
	}
	r.lastTick = now

	percent := 100.0
	if totalBytes > 0 {
		percent = float64(bytesProcessed) / float64(totalBytes) * 100
	}
	fmt.Fprintf(r.w, "\r  %s %s/%s (%.0f%%)", name,
		utils.FormatFileSize(bytesProcessed), utils.FormatFileSize(totalBytes), percent)
	r.dirty = true
}

// FileCompleted implements hashing.Observer.
func (r *progressReporter) FileCompleted(name string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clearLine()
	if err != nil {
		fmt.Fprintf(r.w, "  %s: %v\n", name, err)
		return
	}
	fmt.Fprintf(r.w, "  %s: done\n", name)
}

// clearLine terminates a pending \r progress line.
func (r *progressReporter) clearLine() {
	if r.dirty {
		fmt.Fprintln(r.w)
		r.dirty = false
	}
}
