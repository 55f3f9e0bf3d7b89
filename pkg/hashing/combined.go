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
	"fmt"
	"sort"

	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
)

// CombinedDigest folds several per-algorithm digests of one file into a
// single value: the hex digests are concatenated in algorithm-name order
// (so the result is independent of request order) and the concatenation is
// hashed with the given algorithm.
//
// It needs at least two successful digests; a combined digest over one
// value adds nothing.
func CombinedDigest(results map[engines.Algorithm]HashResult, algorithm engines.Algorithm) (string, error) {
	if len(results) < 2 {
		return "", fmt.Errorf("%w: combined digest needs at least two digests, got %d",
			ErrInvalidRequest, len(results))
	}

	names := make([]string, 0, len(results))
	for algo, hr := range results {
		if hr.Err != nil {
			return "", fmt.Errorf("cannot combine failed digest for %s: %w", algo, hr.Err)
		}
		names = append(names, string(algo))
	}
	sort.Strings(names)

	engine, err := engines.Create(algorithm)
	if err != nil {
		return "", err
	}

	for _, name := range names {
		engine.Update([]byte(results[engines.Algorithm(name)].Digest))
	}

	d, err := engine.Compute()
	if err != nil {
		return "", fmt.Errorf("compute combined digest: %w", err)
	}
	return d.Hex(), nil
}
