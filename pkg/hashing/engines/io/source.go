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

// Package io provides the byte-supply side of hashing: named sources and
// the chunked, size-limited reader that streams them exactly once.
package io

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Source is a named, sized, byte-readable handle. The core reads the
// stream returned by Open to completion or aborts cleanly on error; the
// handle returned by Open is closed on every exit path.
type Source struct {
	// Name identifies the source in results and progress notifications.
	Name string
	// Size is the declared size in bytes. It is used for validation and
	// progress totals; the actual stream length is enforced separately.
	Size int64
	// Open returns a fresh reader over the source bytes.
	Open func() (io.ReadCloser, error)
}

// FileSource builds a Source backed by a file on disk. The file is opened
// lazily, once per hash computation.
func FileSource(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Source{}, fmt.Errorf("stat %q: %w", path, err)
	}
	if info.IsDir() {
		return Source{}, fmt.Errorf("%q is a directory, not a file", path)
	}

	return Source{
		Name: info.Name(),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// BytesSource builds an in-memory Source, mainly for callers that already
// hold the content (uploads, tests).
func BytesSource(name string, data []byte) Source {
	return Source{
		Name: name,
		Size: int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}
