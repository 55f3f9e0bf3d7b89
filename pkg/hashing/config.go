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

// Package hashing computes cryptographic digests of byte sources. It
// provides the per-file multi-digest engine (Hasher) and the fault-isolated
// multi-file coordinator (Batch), on top of the engine registry in
// pkg/hashing/engines.
package hashing

import (
	"fmt"

	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
)

// Defaults for Config. All limits are injected, never read from globals.
const (
	DefaultChunkSize     = 8192
	DefaultMaxFileSize   = 1 << 30 // 1 GiB
	DefaultMaxFiles      = 5
	DefaultMaxAlgorithms = 3
	DefaultMaxWorkers    = 1
)

// DefaultCombinedAlgorithm folds multi-algorithm results into the combined
// digest unless overridden.
const DefaultCombinedAlgorithm = engines.SHA256

// Config carries the limits and tuning knobs for hashing operations.
type Config struct {
	// ChunkSize is the read buffer size in bytes.
	chunkSize int

	// MaxFileSize caps both declared and actual source size in bytes.
	maxFileSize int64

	// MaxFiles caps the number of sources per batch.
	maxFiles int

	// MaxAlgorithms caps the number of algorithms per request.
	maxAlgorithms int

	// MaxWorkers caps concurrent file computations in a batch. 1 means
	// strictly sequential.
	maxWorkers int

	// CombinedAlgorithm folds per-algorithm digests into the combined one.
	combinedAlgorithm engines.Algorithm
}

// NewConfig returns a Config with the default limits.
func NewConfig() *Config {
	return &Config{
		chunkSize:     DefaultChunkSize,
		maxFileSize:   DefaultMaxFileSize,
		maxFiles:      DefaultMaxFiles,
		maxAlgorithms: DefaultMaxAlgorithms,
		maxWorkers:    DefaultMaxWorkers,

		combinedAlgorithm: DefaultCombinedAlgorithm,
	}
}

// SetChunkSize sets the read buffer size in bytes.
func (c *Config) SetChunkSize(n int) *Config {
	c.chunkSize = n
	return c
}

// SetMaxFileSize sets the per-source size cap in bytes.
func (c *Config) SetMaxFileSize(n int64) *Config {
	c.maxFileSize = n
	return c
}

// SetMaxFiles sets the per-batch source count cap.
func (c *Config) SetMaxFiles(n int) *Config {
	c.maxFiles = n
	return c
}

// SetMaxAlgorithms sets the per-request algorithm count cap.
func (c *Config) SetMaxAlgorithms(n int) *Config {
	c.maxAlgorithms = n
	return c
}

// SetMaxWorkers sets the number of concurrent file computations.
func (c *Config) SetMaxWorkers(n int) *Config {
	c.maxWorkers = n
	return c
}

// SetCombinedAlgorithm sets the algorithm that folds multi-algorithm
// results into the combined digest.
func (c *Config) SetCombinedAlgorithm(algorithm engines.Algorithm) *Config {
	c.combinedAlgorithm = algorithm
	return c
}

// ChunkSize returns the read buffer size in bytes.
func (c *Config) ChunkSize() int { return c.chunkSize }

// MaxFileSize returns the per-source size cap in bytes.
func (c *Config) MaxFileSize() int64 { return c.maxFileSize }

// MaxFiles returns the per-batch source count cap.
func (c *Config) MaxFiles() int { return c.maxFiles }

// MaxAlgorithms returns the per-request algorithm count cap.
func (c *Config) MaxAlgorithms() int { return c.maxAlgorithms }

// MaxWorkers returns the number of concurrent file computations.
func (c *Config) MaxWorkers() int { return c.maxWorkers }

// CombinedAlgorithm returns the combined-digest fold algorithm.
func (c *Config) CombinedAlgorithm() engines.Algorithm { return c.combinedAlgorithm }

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.chunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.chunkSize)
	}
	if c.maxFileSize <= 0 {
		return fmt.Errorf("max file size must be positive, got %d", c.maxFileSize)
	}
	if c.maxFiles <= 0 {
		return fmt.Errorf("max files must be positive, got %d", c.maxFiles)
	}
	if c.maxAlgorithms <= 0 {
		return fmt.Errorf("max algorithms must be positive, got %d", c.maxAlgorithms)
	}
	if c.maxWorkers <= 0 {
		return fmt.Errorf("max workers must be positive, got %d", c.maxWorkers)
	}
	if c.combinedAlgorithm == "" {
		return fmt.Errorf("combined algorithm must not be empty")
	}
	return nil
}
