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

package io

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"
)

// drain reads every chunk, returning the chunk sizes and the concatenated
// content.
func drain(t *testing.T, cr *ChunkedReader) ([]int, []byte) {
	t.Helper()

	var sizes []int
	var content []byte
	for {
		chunk, err := cr.Next()
		if errors.Is(err, io.EOF) {
			return sizes, content
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		sizes = append(sizes, len(chunk))
		content = append(content, chunk...)
	}
}

func TestChunkedReader_ExactMultiple(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, 30)
	cr, err := NewChunkedReader(bytes.NewReader(data), 10, 0)
	if err != nil {
		t.Fatalf("NewChunkedReader() error = %v", err)
	}

	sizes, content := drain(t, cr)
	if want := []int{10, 10, 10}; !intSlicesEqual(sizes, want) {
		t.Errorf("chunk sizes = %v, want %v", sizes, want)
	}
	if !bytes.Equal(content, data) {
		t.Error("reassembled content differs from input")
	}
	if cr.BytesRead() != 30 {
		t.Errorf("BytesRead() = %d, want 30", cr.BytesRead())
	}
}

func TestChunkedReader_ShortFinalChunk(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, 25)
	cr, err := NewChunkedReader(bytes.NewReader(data), 10, 0)
	if err != nil {
		t.Fatalf("NewChunkedReader() error = %v", err)
	}

	sizes, content := drain(t, cr)
	if want := []int{10, 10, 5}; !intSlicesEqual(sizes, want) {
		t.Errorf("chunk sizes = %v, want %v", sizes, want)
	}
	if !bytes.Equal(content, data) {
		t.Error("reassembled content differs from input")
	}
}

func TestChunkedReader_Empty(t *testing.T) {
	cr, err := NewChunkedReader(bytes.NewReader(nil), 10, 0)
	if err != nil {
		t.Fatalf("NewChunkedReader() error = %v", err)
	}

	if _, err := cr.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("Next() error = %v, want io.EOF", err)
	}
	if cr.BytesRead() != 0 {
		t.Errorf("BytesRead() = %d, want 0", cr.BytesRead())
	}
}

func TestChunkedReader_EOFSticky(t *testing.T) {
	cr, err := NewChunkedReader(bytes.NewReader([]byte("x")), 10, 0)
	if err != nil {
		t.Fatalf("NewChunkedReader() error = %v", err)
	}

	drain(t, cr)
	for i := 0; i < 3; i++ {
		if _, err := cr.Next(); !errors.Is(err, io.EOF) {
			t.Fatalf("Next() after EOF, call %d: error = %v, want io.EOF", i, err)
		}
	}
}

func TestChunkedReader_SizeLimit(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, 100)
	cr, err := NewChunkedReader(bytes.NewReader(data), 16, 64)
	if err != nil {
		t.Fatalf("NewChunkedReader() error = %v", err)
	}

	var readErr error
	for {
		_, readErr = cr.Next()
		if readErr != nil {
			break
		}
	}
	if !errors.Is(readErr, ErrFileTooLarge) {
		t.Fatalf("Next() error = %v, want ErrFileTooLarge", readErr)
	}

	// The limit error is terminal.
	if _, err := cr.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() after limit error = %v, want io.EOF", err)
	}
}

func TestChunkedReader_LimitAtExactSize(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, 64)
	cr, err := NewChunkedReader(bytes.NewReader(data), 16, 64)
	if err != nil {
		t.Fatalf("NewChunkedReader() error = %v", err)
	}

	// Exactly at the limit is allowed.
	_, content := drain(t, cr)
	if len(content) != 64 {
		t.Errorf("read %d bytes, want 64", len(content))
	}
}

type stutterReader struct {
	data []byte
}

// Read returns one byte at a time to exercise ReadFull's accumulation.
func (r *stutterReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}

func TestChunkedReader_PartialReads(t *testing.T) {
	data := []byte("partial reads must still fill whole chunks")
	cr, err := NewChunkedReader(&stutterReader{data: append([]byte(nil), data...)}, 8, 0)
	if err != nil {
		t.Fatalf("NewChunkedReader() error = %v", err)
	}

	sizes, content := drain(t, cr)
	if !bytes.Equal(content, data) {
		t.Error("reassembled content differs from input")
	}
	for i, size := range sizes[:len(sizes)-1] {
		if size != 8 {
			t.Errorf("chunk %d has size %d, want 8", i, size)
		}
	}
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestChunkedReader_ReadError(t *testing.T) {
	cause := fmt.Errorf("bad sector")
	cr, err := NewChunkedReader(errReader{err: cause}, 10, 0)
	if err != nil {
		t.Fatalf("NewChunkedReader() error = %v", err)
	}

	if _, err := cr.Next(); !errors.Is(err, cause) {
		t.Fatalf("Next() error = %v, want wrapped %v", err, cause)
	}
}

func TestNewChunkedReader_Invalid(t *testing.T) {
	if _, err := NewChunkedReader(nil, 10, 0); err == nil {
		t.Error("NewChunkedReader(nil reader) accepted")
	}
	if _, err := NewChunkedReader(bytes.NewReader(nil), 0, 0); err == nil {
		t.Error("NewChunkedReader(chunk size 0) accepted")
	}
	if _, err := NewChunkedReader(bytes.NewReader(nil), -1, 0); err == nil {
		t.Error("NewChunkedReader(negative chunk size) accepted")
	}
}

func intSlicesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
