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

// Package engines defines the hash algorithm identifiers, the incremental
// hashing interfaces, and the registry that maps identifiers to engine
// factories.
//
// An engine is a single-use accumulator: it absorbs byte chunks in order
// via Update and finalizes exactly once via Compute. Supporting a new
// algorithm is a registry edit only; nothing downstream changes.
package engines

import (
	"github.com/atikktokk/hash-tool/pkg/hashing/digests"
)

// Algorithm identifies a hash algorithm in the registry.
type Algorithm string

// The algorithms registered by the memory package.
const (
	MD5      Algorithm = "md5"
	SHA1     Algorithm = "sha1"
	SHA224   Algorithm = "sha224"
	SHA256   Algorithm = "sha256"
	SHA384   Algorithm = "sha384"
	SHA512   Algorithm = "sha512"
	SHA3_256 Algorithm = "sha3-256"
	SHA3_384 Algorithm = "sha3-384"
	SHA3_512 Algorithm = "sha3-512"
	BLAKE2b  Algorithm = "blake2b"
	BLAKE2s  Algorithm = "blake2s"
	BLAKE3   Algorithm = "blake3"
)

// HashEngine is the finalization side of a hash computation.
type HashEngine interface {
	// Compute finalizes the hash computation and returns the resulting
	// digest. It must be called at most once per accumulated stream.
	Compute() (digests.Digest, error)

	// DigestName returns the canonical algorithm name. It is carried into
	// the Digest returned by Compute.
	DigestName() string

	// DigestSize returns the size in bytes of digests produced by this
	// engine, matching the Size() of the Digest returned by Compute.
	DigestSize() int
}

// Streaming is the incremental-input side of a hash computation. It is
// separate from HashEngine so one-shot engines remain expressible.
type Streaming interface {
	// Update absorbs additional bytes into the hash state.
	Update(data []byte)

	// Reset clears the hash state and optionally seeds it with data.
	Reset(data []byte)
}

// StreamingHashEngine is an engine that accepts incremental input.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
