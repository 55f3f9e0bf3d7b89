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

// Observer receives progress notifications during hashing. Implementations
// must be fast and must not block: notifications are fire-and-forget and
// never alter the digest computation path.
//
// With MaxWorkers > 1, notifications for different files may interleave;
// implementations that aggregate across files must synchronize themselves.
type Observer interface {
	// FileStarted is called once before a file's stream is opened.
	FileStarted(name string, totalBytes int64)

	// FileProgress is called after each absorbed chunk.
	FileProgress(name string, bytesProcessed, totalBytes int64)

	// FileCompleted is called once per file, err nil on success.
	FileCompleted(name string, err error)
}

// NopObserver discards all notifications.
type NopObserver struct{}

// FileStarted implements Observer.
func (NopObserver) FileStarted(string, int64) {}

// FileProgress implements Observer.
func (NopObserver) FileProgress(string, int64, int64) {}

// FileCompleted implements Observer.
func (NopObserver) FileCompleted(string, error) {}
