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

package engines

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnsupportedAlgorithm is returned by Create for identifiers that are
// not in the registry.
var ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

// Factory creates a fresh engine. Engines returned by successive calls
// must not share state.
type Factory func() (StreamingHashEngine, error)

var (
	registry = make(map[Algorithm]Factory)
	mu       sync.RWMutex
)

// Register adds a factory for the given algorithm. Registering the same
// algorithm twice is an error; names are case-sensitive.
func Register(algorithm Algorithm, factory Factory) error {
	mu.Lock()
	defer mu.Unlock()

	if algorithm == "" {
		return fmt.Errorf("algorithm name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}
	if _, exists := registry[algorithm]; exists {
		return fmt.Errorf("hash algorithm %q already registered", algorithm)
	}

	registry[algorithm] = factory
	return nil
}

// MustRegister registers a factory or panics. Intended for package init,
// where a duplicate registration is a programming error.
func MustRegister(algorithm Algorithm, factory Factory) {
	if err := Register(algorithm, factory); err != nil {
		panic(fmt.Sprintf("failed to register hash algorithm %q: %v", algorithm, err))
	}
}

// Create returns a fresh engine for the given algorithm, or an error
// wrapping ErrUnsupportedAlgorithm if the identifier is unknown.
func Create(algorithm Algorithm) (StreamingHashEngine, error) {
	mu.RLock()
	factory, exists := registry[algorithm]
	mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s (supported: %v)",
			ErrUnsupportedAlgorithm, algorithm, SupportedAlgorithms())
	}

	engine, err := factory()
	if err != nil {
		return nil, fmt.Errorf("create hash engine for %q: %w", algorithm, err)
	}

	return engine, nil
}

// SupportedAlgorithms returns the registered algorithm names, sorted.
func SupportedAlgorithms() []Algorithm {
	mu.RLock()
	defer mu.RUnlock()

	algorithms := make([]Algorithm, 0, len(registry))
	for algo := range registry {
		algorithms = append(algorithms, algo)
	}
	sort.Slice(algorithms, func(i, j int) bool { return algorithms[i] < algorithms[j] })
	return algorithms
}

// IsSupported reports whether the algorithm is registered.
func IsSupported(algorithm Algorithm) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, exists := registry[algorithm]
	return exists
}
