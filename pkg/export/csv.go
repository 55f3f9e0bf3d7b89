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
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/atikktokk/hash-tool/pkg/hashing"
	"github.com/atikktokk/hash-tool/pkg/utils"
)

// CSVExporter writes one row per (file, algorithm) pair.
type CSVExporter struct{}

var _ Exporter = (*CSVExporter)(nil)

var csvHeader = []string{
	"file", "size_bytes", "status", "algorithm", "digest", "elapsed", "error",
}

// Export implements Exporter.
func (e *CSVExporter) Export(w io.Writer, batch hashing.BatchResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, file := range batch.Files {
		if file.Status == hashing.StatusSkipped {
			row := []string{file.Name, strconv.FormatInt(file.Size, 10), file.Status.String(), "", "", "", ""}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
			continue
		}

		for _, algo := range file.Algorithms {
			hr := file.Digests[algo]

			errText := ""
			if hr.Err != nil {
				errText = hr.Err.Error()
			}

			row := []string{
				file.Name,
				strconv.FormatInt(file.Size, 10),
				file.Status.String(),
				string(algo),
				hr.Digest,
				utils.FormatDuration(hr.Elapsed),
				errText,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// Extension implements Exporter.
func (e *CSVExporter) Extension() string {
	return "csv"
}
