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

// Package utils holds display formatting helpers shared by the CLI and
// the export writers.
package utils

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatFileSize renders a byte count for humans using 1024-based units
// ("1.5 MiB").
func FormatFileSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.IBytes(uint64(size))
}

// FormatDuration renders a duration compactly: sub-minute values as
// seconds with two decimals, longer ones as "XmY.Ys".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}

	minutes := int(d.Minutes())
	seconds := d.Seconds() - float64(minutes)*60
	return fmt.Sprintf("%dm%.1fs", minutes, seconds)
}

// TruncateDigest shortens a long hex digest for display, keeping the head
// and tail: "ca9781...ee48bb". Digests at or under maxLen pass through.
func TruncateDigest(digest string, maxLen int) string {
	if maxLen <= 3 || len(digest) <= maxLen {
		return digest
	}

	show := (maxLen - 3) / 2
	return digest[:show] + "..." + digest[len(digest)-show:]
}

// Pluralize returns "N singular" or "N singulars".
func Pluralize(count int, singular string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %ss", count, singular)
}

// Timestamp returns the current time formatted for report headers and
// export filenames.
func Timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}
