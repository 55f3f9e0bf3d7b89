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
	"sort"
	"testing"

	"github.com/atikktokk/hash-tool/pkg/hashing/digests"
)

// fakeEngine counts absorbed bytes; enough to drive the registry.
type fakeEngine struct {
	name  string
	total int
}

func (e *fakeEngine) Update(data []byte) { e.total += len(data) }

func (e *fakeEngine) Reset(data []byte) { e.total = len(data) }

func (e *fakeEngine) Compute() (digests.Digest, error) {
	return digests.NewDigest(e.name, []byte{byte(e.total)}), nil
}
func (e *fakeEngine) DigestName() string { return e.name }
func (e *fakeEngine) DigestSize() int    { return 1 }

func fakeFactory(name string) Factory {
	return func() (StreamingHashEngine, error) {
		return &fakeEngine{name: name}, nil
	}
}

func TestRegisterAndCreate(t *testing.T) {
	const algo Algorithm = "test-register-create"
	if err := Register(algo, fakeFactory(string(algo))); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	engine, err := Create(algo)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if engine.DigestName() != string(algo) {
		t.Errorf("DigestName() = %q, want %q", engine.DigestName(), algo)
	}
}

func TestCreate_FreshInstances(t *testing.T) {
	const algo Algorithm = "test-fresh-instances"
	if err := Register(algo, fakeFactory(string(algo))); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	first, err := Create(algo)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	second, err := Create(algo)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first == second {
		t.Error("Create() returned the same engine twice; instances must not share state")
	}

	first.Update([]byte("some bytes"))
	d, err := second.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if d.Value()[0] != 0 {
		t.Error("second engine saw bytes absorbed by the first")
	}
}

func TestRegister_Duplicate(t *testing.T) {
	const algo Algorithm = "test-duplicate"
	if err := Register(algo, fakeFactory(string(algo))); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if err := Register(algo, fakeFactory(string(algo))); err == nil {
		t.Fatal("second Register() accepted a duplicate")
	}
}

func TestRegister_Invalid(t *testing.T) {
	if err := Register("", fakeFactory("x")); err == nil {
		t.Error("Register() accepted an empty name")
	}
	if err := Register("test-nil-factory", nil); err == nil {
		t.Error("Register() accepted a nil factory")
	}
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	const algo Algorithm = "test-must-register"
	MustRegister(algo, fakeFactory(string(algo)))

	defer func() {
		if recover() == nil {
			t.Error("MustRegister() did not panic on duplicate")
		}
	}()
	MustRegister(algo, fakeFactory(string(algo)))
}

func TestCreate_Unsupported(t *testing.T) {
	_, err := Create("no-such-algorithm")
	if !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Fatalf("Create() error = %v, want ErrUnsupportedAlgorithm", err)
	}
}

func TestIsSupported(t *testing.T) {
	const algo Algorithm = "test-is-supported"
	if IsSupported(algo) {
		t.Fatal("IsSupported() true before registration")
	}
	if err := Register(algo, fakeFactory(string(algo))); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if !IsSupported(algo) {
		t.Error("IsSupported() false after registration")
	}
}

func TestSupportedAlgorithms_Sorted(t *testing.T) {
	algorithms := SupportedAlgorithms()
	if !sort.SliceIsSorted(algorithms, func(i, j int) bool { return algorithms[i] < algorithms[j] }) {
		t.Errorf("SupportedAlgorithms() not sorted: %v", algorithms)
	}
}
