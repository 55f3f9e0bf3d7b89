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

package export

import (
	"fmt"
	"io"

	"github.com/atikktokk/hash-tool/pkg/hashing"
	"github.com/atikktokk/hash-tool/pkg/utils"
)

// TextExporter writes a human-readable report, one block per file.
type TextExporter struct{}

var _ Exporter = (*TextExporter)(nil)

// Export implements Exporter.
func (e *TextExporter) Export(w io.Writer, batch hashing.BatchResult) error {
	bw := &errWriter{w: w}

	bw.printf("Hash Results - %s\n", utils.Timestamp())
	bw.printf("%s attempted, %d succeeded, %d skipped\n\n",
		utils.Pluralize(batch.Attempted, "file"), batch.Succeeded, batch.Skipped)

	for _, file := range batch.Files {
		bw.printf("File: %s (%s)\n", file.Name, utils.FormatFileSize(file.Size))
		bw.printf("Status: %s\n", file.Status)

		if file.Status != hashing.StatusSkipped {
			bw.printf("Elapsed: %s\n", utils.FormatDuration(file.Elapsed))
			for _, algo := range file.Algorithms {
				hr := file.Digests[algo]
				if hr.Err != nil {
					bw.printf("  %-10s error: %v\n", algo, hr.Err)
				} else {
					bw.printf("  %-10s %s\n", algo, hr.Digest)
				}
			}
			if file.Combined != "" {
				bw.printf("  %-10s %s\n", "combined", file.Combined)
			}
		}
		bw.printf("\n")
	}

	return bw.err
}

// Extension implements Exporter.
func (e *TextExporter) Extension() string {
	return "txt"
}

// errWriter folds per-line write errors into one sticky error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
