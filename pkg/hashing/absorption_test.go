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
	"errors"
	"testing"

	"github.com/atikktokk/hash-tool/pkg/hashing/digests"
	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
	hashio "github.com/atikktokk/hash-tool/pkg/hashing/engines/io"
)

// Misbehaving engines registered once for the whole test binary.
const (
	panicOnUpdate  engines.Algorithm = "test-panic-update"
	panicOnCompute engines.Algorithm = "test-panic-compute"
)

func init() {
	engines.MustRegister(panicOnUpdate, func() (engines.StreamingHashEngine, error) {
		return &brokenEngine{name: string(panicOnUpdate), panicIn: "update"}, nil
	})
	engines.MustRegister(panicOnCompute, func() (engines.StreamingHashEngine, error) {
		return &brokenEngine{name: string(panicOnCompute), panicIn: "compute"}, nil
	})
}

type brokenEngine struct {
	name    string
	panicIn string
}

func (e *brokenEngine) Update([]byte) {
	if e.panicIn == "update" {
		panic("internal state corrupted")
	}
}

func (e *brokenEngine) Reset([]byte) {}

func (e *brokenEngine) Compute() (digests.Digest, error) {
	if e.panicIn == "compute" {
		panic("internal state corrupted")
	}
	return digests.NewDigest(e.name, []byte{0}), nil
}

func (e *brokenEngine) DigestName() string { return e.name }

func (e *brokenEngine) DigestSize() int { return 1 }

func TestHashFile_UpdatePanicContained(t *testing.T) {
	h := newTestHasher(t, nil)
	src := hashio.BytesSource("f", []byte("trigger"))

	fr, err := h.HashFile(context.Background(), src, []engines.Algorithm{panicOnUpdate, engines.SHA256})
	if err != nil {
		t.Fatalf("HashFile() error = %v, want panic contained", err)
	}
	if fr.Status != StatusFailed {
		t.Fatalf("Status = %v, want %v", fr.Status, StatusFailed)
	}

	// Both algorithms share the absorption error; the healthy one gets no
	// digest because the single pass was aborted.
	for _, algo := range []engines.Algorithm{panicOnUpdate, engines.SHA256} {
		hr := fr.Digests[algo]
		if !errors.Is(hr.Err, ErrAbsorption) {
			t.Errorf("%s: Err = %v, want ErrAbsorption", algo, hr.Err)
		}
		if hr.Digest != "" {
			t.Errorf("%s: digest = %q, want empty", algo, hr.Digest)
		}
	}
}

func TestHashFile_ComputePanicContained(t *testing.T) {
	h := newTestHasher(t, nil)
	src := hashio.BytesSource("f", []byte("trigger"))

	fr, err := h.HashFile(context.Background(), src, []engines.Algorithm{panicOnCompute})
	if err != nil {
		t.Fatalf("HashFile() error = %v, want panic contained", err)
	}
	if fr.Status != StatusFailed {
		t.Fatalf("Status = %v, want %v", fr.Status, StatusFailed)
	}
	if hr := fr.Digests[panicOnCompute]; !errors.Is(hr.Err, ErrAbsorption) {
		t.Errorf("Err = %v, want ErrAbsorption", hr.Err)
	}
}

func TestBatchRun_PanicIsolatedToOneFile(t *testing.T) {
	b := newTestBatch(t, nil, nil)

	sources := byteSources([]byte("first"), []byte("second"))
	result, err := b.Run(context.Background(), sources, []engines.Algorithm{panicOnUpdate})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Every file fails independently; the panic never escapes.
	for i, fr := range result.Files {
		if fr.Status != StatusFailed {
			t.Errorf("Files[%d].Status = %v, want %v", i, fr.Status, StatusFailed)
		}
	}
	if result.Attempted != 2 || result.Succeeded != 0 {
		t.Errorf("Attempted/Succeeded = %d/%d, want 2/0", result.Attempted, result.Succeeded)
	}
}
