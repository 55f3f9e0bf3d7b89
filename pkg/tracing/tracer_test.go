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

package tracing

import (
	"context"
	"errors"
	"testing"
)

// recordingTracer captures span names and attributes.
type recordingTracer struct {
	spans []*recordingSpan
}

type recordingSpan struct {
	name  string
	attrs map[string]interface{}
	ended bool
}

func (t *recordingTracer) Start(ctx context.Context, name string) (context.Context, Span) {
	span := &recordingSpan{name: name, attrs: map[string]interface{}{}}
	t.spans = append(t.spans, span)
	return ctx, span
}

func (s *recordingSpan) SetAttribute(key string, value interface{}) { s.attrs[key] = value }

func (s *recordingSpan) End() { s.ended = true }

func TestRun_NoopByDefault(t *testing.T) {
	SetTracer(nil)

	if Enabled() {
		t.Fatal("Enabled() = true with the no-op tracer")
	}

	called := false
	err := Run(context.Background(), "op", nil, func(context.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !called {
		t.Error("fn was not invoked")
	}
}

func TestRun_RecordsSpan(t *testing.T) {
	tracer := &recordingTracer{}
	SetTracer(tracer)
	defer SetTracer(nil)

	if !Enabled() {
		t.Fatal("Enabled() = false with a real tracer installed")
	}

	wantErr := errors.New("op failed")
	err := Run(context.Background(), "Hash", map[string]interface{}{"files": 3}, func(context.Context) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run() error = %v, want %v", err, wantErr)
	}

	if len(tracer.spans) != 1 {
		t.Fatalf("span count = %d, want 1", len(tracer.spans))
	}
	span := tracer.spans[0]
	if span.name != "Hash" {
		t.Errorf("span name = %q, want %q", span.name, "Hash")
	}
	if span.attrs["files"] != 3 {
		t.Errorf("span attrs = %v, want files=3", span.attrs)
	}
	if !span.ended {
		t.Error("span was not ended")
	}
}
