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

// Package memory provides in-memory streaming hash engines and registers
// one for every supported algorithm. Importing this package (usually for
// side effects) populates the engines registry.
package memory

import (
	"hash"

	"github.com/atikktokk/hash-tool/pkg/hashing/digests"
	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
)

var _ engines.StreamingHashEngine = (*GenericHashEngine)(nil)

// HashFactoryFunc creates a new hash.Hash instance.
type HashFactoryFunc func() (hash.Hash, error)

// GenericHashEngine adapts any hash.Hash to the StreamingHashEngine
// interface. All supported algorithms share this one wrapper; only the
// name, size and factory differ.
type GenericHashEngine struct {
	name    string
	size    int
	factory HashFactoryFunc
	h       hash.Hash
}

// NewGenericHashEngine creates an engine around the given hash.Hash
// factory. The factory is retained so Reset can rebuild a clean state.
func NewGenericHashEngine(name string, size int, factory HashFactoryFunc) (*GenericHashEngine, error) {
	h, err := factory()
	if err != nil {
		return nil, err
	}

	return &GenericHashEngine{
		name:    name,
		size:    size,
		factory: factory,
		h:       h,
	}, nil
}

// Update absorbs additional bytes into the hash state.
func (e *GenericHashEngine) Update(data []byte) {
	if len(data) > 0 {
		// hash.Hash.Write never returns an error per its contract.
		_, _ = e.h.Write(data)
	}
}

// Reset clears the hash state and optionally seeds it with data.
func (e *GenericHashEngine) Reset(data []byte) {
	h, _ := e.factory() // factory validated at construction
	e.h = h

	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Compute finalizes the hash and returns the digest.
func (e *GenericHashEngine) Compute() (digests.Digest, error) {
	sum := e.h.Sum(nil)
	return digests.NewDigest(e.name, sum), nil
}

// DigestName returns the canonical algorithm name.
func (e *GenericHashEngine) DigestName() string {
	return e.name
}

// DigestSize returns the size in bytes of the produced digest.
func (e *GenericHashEngine) DigestSize() int {
	return e.size
}

// register wires an algorithm into the engines registry with a hash.Hash
// factory that cannot fail.
func register(algorithm engines.Algorithm, size int, newHash func() hash.Hash) {
	engines.MustRegister(algorithm, func() (engines.StreamingHashEngine, error) {
		return NewGenericHashEngine(string(algorithm), size, func() (hash.Hash, error) {
			return newHash(), nil
		})
	})
}
