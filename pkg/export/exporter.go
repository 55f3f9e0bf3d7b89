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

// Package export renders batch results into downloadable formats. It is a
// consumer of hashing.BatchResult; it contributes nothing to the digest
// computation itself.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/atikktokk/hash-tool/pkg/hashing"
)

// Exporter writes a BatchResult in one specific format.
type Exporter interface {
	// Export renders the batch to w.
	Export(w io.Writer, batch hashing.BatchResult) error

	// Extension returns the file extension for this format, without dot.
	Extension() string
}

// Filename builds the default timestamped export filename, e.g.
// "hash_results_2026-08-23_14-30-00.csv".
func Filename(exp Exporter, now time.Time) string {
	return fmt.Sprintf("hash_results_%s.%s", now.Format("2006-01-02_15-04-05"), exp.Extension())
}

// New returns the exporter for a format name ("csv" or "text").
func New(format string) (Exporter, error) {
	switch format {
	case "csv":
		return &CSVExporter{}, nil
	case "text", "txt":
		return &TextExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (supported: csv, text)", format)
	}
}
