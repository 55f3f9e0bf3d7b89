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
	"time"

	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
)

// FileStatus classifies the outcome of one file's computation.
type FileStatus int

const (
	// StatusHashed means every requested algorithm produced a digest.
	StatusHashed FileStatus = iota
	// StatusFailed means the file's computation was aborted; every
	// requested algorithm carries the same error.
	StatusFailed
	// StatusSkipped means the file was never fully processed because the
	// batch was cancelled first. Any partial result was discarded.
	StatusSkipped
)

// String returns the status name used in reports and exports.
func (s FileStatus) String() string {
	switch s {
	case StatusHashed:
		return "hashed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// HashResult is the outcome of one (file, algorithm) computation. It is
// created once, after the computation completes or fails, and not mutated
// afterwards.
type HashResult struct {
	// Algorithm that produced (or failed to produce) the digest.
	Algorithm engines.Algorithm
	// Digest is the lowercase hex digest; empty when Err is non-nil.
	Digest string
	// FileName of the source.
	FileName string
	// FileSize is the declared source size in bytes.
	FileSize int64
	// Elapsed is the wall-clock time of the whole per-file operation
	// (read plus absorption across all algorithms), not per algorithm.
	Elapsed time.Duration
	// Err is nil on success and carries the failure reason otherwise.
	Err error
}

// Ok reports whether the computation succeeded.
func (r HashResult) Ok() bool {
	return r.Err == nil
}

// FileResult groups one file's results, one HashResult per requested
// algorithm, in request order.
type FileResult struct {
	// Name of the source.
	Name string
	// Size is the declared source size in bytes.
	Size int64
	// Status classifies the outcome.
	Status FileStatus
	// Algorithms preserves the request order for deterministic iteration.
	Algorithms []engines.Algorithm
	// Digests maps each requested algorithm to its result.
	Digests map[engines.Algorithm]HashResult
	// Combined is the digest over all individual hex digests, set only
	// when the file hashed successfully with two or more algorithms.
	Combined string
	// BytesProcessed counts bytes actually read from the source.
	BytesProcessed int64
	// Elapsed is the wall-clock time of the whole per-file operation.
	Elapsed time.Duration
}

// Ok reports whether every requested algorithm succeeded.
func (r FileResult) Ok() bool {
	return r.Status == StatusHashed
}

// BatchResult is the ordered outcome of one batch run. Files appear in
// input order regardless of completion order.
type BatchResult struct {
	// Files holds one entry per requested source, in input order.
	Files []FileResult
	// Attempted counts sources whose processing started.
	Attempted int
	// Succeeded counts sources with StatusHashed.
	Succeeded int
	// Skipped counts sources with StatusSkipped.
	Skipped int
}
