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

import "errors"

var (
	// ErrInvalidRequest indicates a malformed request: an empty or
	// oversized algorithm set, or an empty source list. Raised before any
	// stream is touched.
	ErrInvalidRequest = errors.New("invalid hash request")

	// ErrTooManyFiles indicates the batch exceeds the configured maximum
	// file count. Raised before any file is processed.
	ErrTooManyFiles = errors.New("too many files in batch")

	// ErrAbsorption indicates a digest engine failed (or panicked) while
	// absorbing or finalizing. It should not occur with a sound engine but
	// is reported rather than propagated as a crash.
	ErrAbsorption = errors.New("internal absorption failure")
)
