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

package hashing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
	hashio "github.com/atikktokk/hash-tool/pkg/hashing/engines/io"
)

// Hasher computes every requested digest of a source in a single pass over
// its bytes. Memory stays bounded by one chunk buffer plus the fixed state
// of each active engine, independent of source size.
type Hasher struct {
	cfg *Config
	obs Observer
}

// NewHasher creates a Hasher. A nil cfg means defaults; a nil observer
// discards progress notifications.
func NewHasher(cfg *Config, obs Observer) (*Hasher, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("hasher config: %w", err)
	}
	if obs == nil {
		obs = NopObserver{}
	}

	return &Hasher{cfg: cfg, obs: obs}, nil
}

// ValidateAlgorithms checks the request's algorithm set: non-empty, within
// the configured maximum, no duplicates, and every identifier registered.
// It never touches any stream.
func (h *Hasher) ValidateAlgorithms(algorithms []engines.Algorithm) error {
	if len(algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms selected", ErrInvalidRequest)
	}
	if len(algorithms) > h.cfg.MaxAlgorithms() {
		return fmt.Errorf("%w: %d algorithms selected, maximum is %d",
			ErrInvalidRequest, len(algorithms), h.cfg.MaxAlgorithms())
	}

	seen := make(map[engines.Algorithm]bool, len(algorithms))
	for _, algo := range algorithms {
		if seen[algo] {
			return fmt.Errorf("%w: duplicate algorithm %q", ErrInvalidRequest, algo)
		}
		seen[algo] = true

		if !engines.IsSupported(algo) {
			return fmt.Errorf("%w: %s (supported: %v)",
				engines.ErrUnsupportedAlgorithm, algo, engines.SupportedAlgorithms())
		}
	}
	return nil
}

// HashFile streams src once and feeds every chunk to one engine per
// requested algorithm, in request order. It returns a FileResult holding
// one HashResult per algorithm.
//
// Request-level problems (bad algorithm set) return an error without
// touching the stream. Per-file problems (size violation, read error,
// absorption failure) are converted into a StatusFailed result where every
// algorithm carries the same error; the returned error is nil so callers
// can keep processing other files. Cancellation returns ctx's error and a
// StatusSkipped result with any partial computation discarded.
func (h *Hasher) HashFile(ctx context.Context, src hashio.Source, algorithms []engines.Algorithm) (FileResult, error) {
	if err := h.ValidateAlgorithms(algorithms); err != nil {
		return FileResult{}, err
	}

	start := time.Now()

	// Declared size is checked before opening the stream.
	if src.Size > h.cfg.MaxFileSize() {
		err := fmt.Errorf("%w: declared size %d, limit %d",
			hashio.ErrFileTooLarge, src.Size, h.cfg.MaxFileSize())
		return h.failedResult(src, algorithms, err, time.Since(start)), nil
	}

	active := make([]engines.StreamingHashEngine, 0, len(algorithms))
	for _, algo := range algorithms {
		engine, err := engines.Create(algo)
		if err != nil {
			return h.failedResult(src, algorithms, err, time.Since(start)), nil
		}
		active = append(active, engine)
	}

	result, err := h.stream(ctx, src, active)
	if err != nil {
		if ctx.Err() != nil {
			// Partial computation is discarded on cancellation.
			return FileResult{
				Name:   src.Name,
				Size:   src.Size,
				Status: StatusSkipped,
			}, ctx.Err()
		}
		return h.failedResult(src, algorithms, err, time.Since(start)), nil
	}

	elapsed := time.Since(start)
	fr := FileResult{
		Name:           src.Name,
		Size:           src.Size,
		Status:         StatusHashed,
		Algorithms:     append([]engines.Algorithm(nil), algorithms...),
		Digests:        make(map[engines.Algorithm]HashResult, len(algorithms)),
		BytesProcessed: result.bytesRead,
		Elapsed:        elapsed,
	}

	for i, algo := range algorithms {
		fr.Digests[algo] = HashResult{
			Algorithm: algo,
			Digest:    result.digests[i],
			FileName:  src.Name,
			FileSize:  src.Size,
			Elapsed:   elapsed,
		}
	}

	if len(algorithms) > 1 {
		combined, err := CombinedDigest(fr.Digests, h.cfg.CombinedAlgorithm())
		if err != nil {
			return h.failedResult(src, algorithms, err, time.Since(start)), nil
		}
		fr.Combined = combined
	}

	return fr, nil
}

// streamResult carries the successful output of one streaming pass.
type streamResult struct {
	digests   []string
	bytesRead int64
}

// stream drives the chunked reader once, absorbing every chunk into every
// engine, then finalizes each engine to a hex digest. The source handle is
// released on every exit path. Cancellation is observed at chunk
// boundaries only, never mid-absorption.
func (h *Hasher) stream(ctx context.Context, src hashio.Source, active []engines.StreamingHashEngine) (streamResult, error) {
	if src.Open == nil {
		return streamResult{}, fmt.Errorf("source %q has no byte stream", src.Name)
	}

	rc, err := src.Open()
	if err != nil {
		return streamResult{}, fmt.Errorf("open source %q: %w", src.Name, err)
	}
	defer rc.Close()

	reader, err := hashio.NewChunkedReader(rc, h.cfg.ChunkSize(), h.cfg.MaxFileSize())
	if err != nil {
		return streamResult{}, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return streamResult{}, err
		}

		chunk, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return streamResult{}, err
		}

		for _, engine := range active {
			if err := absorb(engine, chunk); err != nil {
				return streamResult{}, err
			}
		}

		h.obs.FileProgress(src.Name, reader.BytesRead(), src.Size)
	}

	hexes := make([]string, len(active))
	for i, engine := range active {
		hex, err := finalize(engine)
		if err != nil {
			return streamResult{}, err
		}
		hexes[i] = hex
	}

	return streamResult{digests: hexes, bytesRead: reader.BytesRead()}, nil
}

// failedResult builds a StatusFailed FileResult where every requested
// algorithm reports the same error.
func (h *Hasher) failedResult(src hashio.Source, algorithms []engines.Algorithm, cause error, elapsed time.Duration) FileResult {
	fr := FileResult{
		Name:       src.Name,
		Size:       src.Size,
		Status:     StatusFailed,
		Algorithms: append([]engines.Algorithm(nil), algorithms...),
		Digests:    make(map[engines.Algorithm]HashResult, len(algorithms)),
		Elapsed:    elapsed,
	}
	for _, algo := range algorithms {
		fr.Digests[algo] = HashResult{
			Algorithm: algo,
			FileName:  src.Name,
			FileSize:  src.Size,
			Elapsed:   elapsed,
			Err:       cause,
		}
	}
	return fr
}

// absorb feeds one chunk into an engine, converting a panicking engine
// into an ErrAbsorption instead of crashing the batch.
func absorb(engine engines.StreamingHashEngine, chunk []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s update panicked: %v", ErrAbsorption, engine.DigestName(), r)
		}
	}()

	engine.Update(chunk)
	return nil
}

// finalize computes an engine's digest exactly once, with the same panic
// containment as absorb.
func finalize(engine engines.StreamingHashEngine) (hex string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s compute panicked: %v", ErrAbsorption, engine.DigestName(), r)
		}
	}()

	d, err := engine.Compute()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrAbsorption, engine.DigestName(), err)
	}
	return d.Hex(), nil
}
