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

package memory

import (
	"hash"

	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
)

func init() {
	// Unkeyed constructors only fail on oversized keys, so the error from
	// blake2b.New512(nil) / blake2s.New256(nil) cannot occur here.
	engines.MustRegister(engines.BLAKE2b, func() (engines.StreamingHashEngine, error) {
		return NewGenericHashEngine(string(engines.BLAKE2b), blake2b.Size, func() (hash.Hash, error) {
			return blake2b.New512(nil)
		})
	})
	engines.MustRegister(engines.BLAKE2s, func() (engines.StreamingHashEngine, error) {
		return NewGenericHashEngine(string(engines.BLAKE2s), blake2s.Size, func() (hash.Hash, error) {
			return blake2s.New256(nil)
		})
	})
}
