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
	"errors"
	"fmt"
	"io"
)

// ErrFileTooLarge is returned when a source exceeds the configured maximum
// size, either by declared size or by actual bytes read.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// ChunkedReader streams an io.Reader in fixed-size chunks, single forward
// pass. The last chunk may be shorter. It enforces a total size limit and
// fails the moment the limit is crossed, without buffering the excess.
//
// Incremental digests must see each byte exactly once and in order, so a
// ChunkedReader is not restartable.
type ChunkedReader struct {
	r         io.Reader
	buf       []byte
	maxBytes  int64
	bytesRead int64
	done      bool
}

// NewChunkedReader wraps r. chunkSize must be positive; maxBytes <= 0
// means unlimited.
func NewChunkedReader(r io.Reader, chunkSize int, maxBytes int64) (*ChunkedReader, error) {
	if r == nil {
		return nil, fmt.Errorf("reader must not be nil")
	}
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}

	return &ChunkedReader{
		r:        r,
		buf:      make([]byte, chunkSize),
		maxBytes: maxBytes,
	}, nil
}

// Next returns the next chunk of at most chunkSize bytes. The returned
// slice aliases an internal buffer and is only valid until the next call.
// It returns io.EOF when the source is exhausted, ErrFileTooLarge (wrapped)
// when the size limit is crossed, and wraps any other read error.
func (cr *ChunkedReader) Next() ([]byte, error) {
	if cr.done {
		return nil, io.EOF
	}

	n, err := io.ReadFull(cr.r, cr.buf)
	if n > 0 {
		cr.bytesRead += int64(n)
		if cr.maxBytes > 0 && cr.bytesRead > cr.maxBytes {
			cr.done = true
			return nil, fmt.Errorf("%w: read %d bytes, limit %d", ErrFileTooLarge, cr.bytesRead, cr.maxBytes)
		}
	}

	switch {
	case err == nil:
		return cr.buf[:n], nil
	case errors.Is(err, io.EOF):
		cr.done = true
		return nil, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		// Short final chunk.
		cr.done = true
		return cr.buf[:n], nil
	default:
		cr.done = true
		return nil, fmt.Errorf("read source: %w", err)
	}
}

// BytesRead returns the total number of bytes produced so far.
func (cr *ChunkedReader) BytesRead() int64 {
	return cr.bytesRead
}
