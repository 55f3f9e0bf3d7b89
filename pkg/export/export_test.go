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
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/atikktokk/hash-tool/pkg/hashing"
	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
)

func sampleBatch() hashing.BatchResult {
	return hashing.BatchResult{
		Files: []hashing.FileResult{
			{
				Name:       "good.bin",
				Size:       4,
				Status:     hashing.StatusHashed,
				Algorithms: []engines.Algorithm{engines.MD5, engines.SHA256},
				Digests: map[engines.Algorithm]hashing.HashResult{
					engines.MD5:    {Algorithm: engines.MD5, Digest: "e2fc714c4727ee9395f324cd2e7f331f"},
					engines.SHA256: {Algorithm: engines.SHA256, Digest: "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589"},
				},
				Combined: "abc123",
			},
			{
				Name:       "bad.bin",
				Size:       9,
				Status:     hashing.StatusFailed,
				Algorithms: []engines.Algorithm{engines.SHA256},
				Digests: map[engines.Algorithm]hashing.HashResult{
					engines.SHA256: {Algorithm: engines.SHA256, Err: errors.New("read source: broken")},
				},
			},
			{
				Name:   "late.bin",
				Size:   7,
				Status: hashing.StatusSkipped,
			},
		},
		Attempted: 2,
		Succeeded: 1,
		Skipped:   1,
	}
}

func TestCSVExporter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CSVExporter{}).Export(&buf, sampleBatch()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	// Header, two rows for good.bin, one for bad.bin, one for late.bin.
	if len(rows) != 5 {
		t.Fatalf("row count = %d, want 5", len(rows))
	}

	wantHeader := []string{"file", "size_bytes", "status", "algorithm", "digest", "elapsed", "error"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	if rows[1][0] != "good.bin" || rows[1][3] != "md5" || rows[1][4] != "e2fc714c4727ee9395f324cd2e7f331f" {
		t.Errorf("unexpected first data row: %v", rows[1])
	}
	if rows[2][3] != "sha256" {
		t.Errorf("second data row algorithm = %q, want sha256", rows[2][3])
	}

	if rows[3][2] != "failed" || rows[3][6] == "" {
		t.Errorf("failed row missing status or error text: %v", rows[3])
	}
	if rows[3][4] != "" {
		t.Errorf("failed row has a digest: %q", rows[3][4])
	}

	if rows[4][2] != "skipped" || rows[4][3] != "" {
		t.Errorf("skipped row not collapsed: %v", rows[4])
	}
}

func TestTextExporter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextExporter{}).Export(&buf, sampleBatch()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"2 files attempted, 1 succeeded, 1 skipped",
		"File: good.bin",
		"88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589",
		"combined",
		"abc123",
		"File: bad.bin",
		"error: read source: broken",
		"File: late.bin",
		"Status: skipped",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	// Skipped files have no digest lines at all.
	lateBlock := out[strings.Index(out, "File: late.bin"):]
	if strings.Contains(lateBlock, "Elapsed") {
		t.Errorf("skipped block carries elapsed time:\n%s", lateBlock)
	}
}

func TestTextExporter_HeaderGrammar(t *testing.T) {
	batch := hashing.BatchResult{
		Files: []hashing.FileResult{
			{Name: "only.bin", Size: 1, Status: hashing.StatusFailed},
		},
		Attempted: 1,
	}

	var buf bytes.Buffer
	if err := (&TextExporter{}).Export(&buf, batch); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	// The count qualifies the noun, not the whole phrase.
	if !strings.Contains(buf.String(), "1 file attempted, 0 succeeded, 0 skipped") {
		t.Errorf("header grammar wrong:\n%s", buf.String())
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
	}{
		{"csv", "csv"},
		{"text", "txt"},
		{"txt", "txt"},
	}
	for _, tc := range tests {
		exp, err := New(tc.format)
		if err != nil {
			t.Errorf("New(%q) error = %v", tc.format, err)
			continue
		}
		if exp.Extension() != tc.wantExt {
			t.Errorf("New(%q).Extension() = %q, want %q", tc.format, exp.Extension(), tc.wantExt)
		}
	}

	if _, err := New("xml"); err == nil {
		t.Error("New(\"xml\") accepted an unknown format")
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 23, 14, 30, 0, 0, time.UTC)
	got := Filename(&CSVExporter{}, now)
	if want := "hash_results_2026-08-23_14-30-00.csv"; got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}
