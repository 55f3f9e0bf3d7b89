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
	"fmt"
	"strings"

	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
	hashio "github.com/atikktokk/hash-tool/pkg/hashing/engines/io"
)

// Verify streams src once with the given algorithm and compares the
// resulting digest against expectedHex, case-insensitively. It returns the
// comparison outcome together with the computed result; a false return
// with a nil error means the digests genuinely differ.
func (h *Hasher) Verify(ctx context.Context, src hashio.Source, algorithm engines.Algorithm, expectedHex string) (bool, HashResult, error) {
	expectedHex = strings.TrimSpace(expectedHex)
	if expectedHex == "" {
		return false, HashResult{}, fmt.Errorf("%w: expected digest is empty", ErrInvalidRequest)
	}

	fr, err := h.HashFile(ctx, src, []engines.Algorithm{algorithm})
	if err != nil {
		return false, HashResult{}, err
	}

	hr := fr.Digests[algorithm]
	if hr.Err != nil {
		return false, hr, hr.Err
	}

	return strings.EqualFold(hr.Digest, expectedHex), hr, nil
}
