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
	"sync"

	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
	hashio "github.com/atikktokk/hash-tool/pkg/hashing/engines/io"
	"github.com/atikktokk/hash-tool/pkg/logging"
)

// Batch runs the per-file hasher over up to MaxFiles sources with one
// shared algorithm set. Files are processed independently: one file's
// failure never aborts the others, and the output order always matches the
// input order, also when MaxWorkers > 1.
type Batch struct {
	cfg    *Config
	hasher *Hasher
	obs    Observer
	log    logging.Logger
}

// NewBatch creates a Batch. A nil cfg means defaults, a nil observer
// discards notifications, a nil logger is silent.
func NewBatch(cfg *Config, obs Observer, log logging.Logger) (*Batch, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if obs == nil {
		obs = NopObserver{}
	}
	if log == nil {
		log = logging.Silent()
	}

	hasher, err := NewHasher(cfg, obs)
	if err != nil {
		return nil, err
	}

	return &Batch{cfg: cfg, hasher: hasher, obs: obs, log: log}, nil
}

// Run hashes every source with every requested algorithm and returns the
// per-file results in input order.
//
// Validation errors (file count, algorithm set) abort the whole call
// before any file is touched. Once file processing has begun the call
// never fails: per-file errors become StatusFailed entries and the batch
// continues. On cancellation, results of already-completed files are
// preserved, the in-flight file's partial result is discarded, and both it
// and the not-yet-started files are reported StatusSkipped.
func (b *Batch) Run(ctx context.Context, sources []hashio.Source, algorithms []engines.Algorithm) (BatchResult, error) {
	if len(sources) == 0 {
		return BatchResult{}, fmt.Errorf("%w: no files in batch", ErrInvalidRequest)
	}
	if len(sources) > b.cfg.MaxFiles() {
		return BatchResult{}, fmt.Errorf("%w: %d files, maximum is %d",
			ErrTooManyFiles, len(sources), b.cfg.MaxFiles())
	}
	if err := b.hasher.ValidateAlgorithms(algorithms); err != nil {
		return BatchResult{}, err
	}

	b.log.Debug("starting batch: %d file(s), algorithms %v", len(sources), algorithms)

	// Pre-fill every slot as skipped; workers overwrite the slots they
	// actually process. Slots never dispatched keep this value.
	results := make([]FileResult, len(sources))
	for i, src := range sources {
		results[i] = FileResult{Name: src.Name, Size: src.Size, Status: StatusSkipped}
	}

	workerCount := b.cfg.MaxWorkers()
	if workerCount > len(sources) {
		workerCount = len(sources)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workerCount)

	for w := 0; w < workerCount; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = b.hashOne(ctx, sources[i], algorithms)
			}
		}()
	}

feed:
	for i := range sources {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	batch := BatchResult{Files: results}
	for i := range results {
		switch results[i].Status {
		case StatusSkipped:
			batch.Skipped++
		case StatusHashed:
			batch.Attempted++
			batch.Succeeded++
		default:
			batch.Attempted++
		}
	}

	b.log.Debug("batch finished: %d attempted, %d succeeded, %d skipped",
		batch.Attempted, batch.Succeeded, batch.Skipped)

	return batch, nil
}

// hashOne wraps one file computation with the started/completed
// notifications and converts cancellation into a skipped entry.
func (b *Batch) hashOne(ctx context.Context, src hashio.Source, algorithms []engines.Algorithm) FileResult {
	if err := ctx.Err(); err != nil {
		return FileResult{Name: src.Name, Size: src.Size, Status: StatusSkipped}
	}

	b.obs.FileStarted(src.Name, src.Size)

	fr, err := b.hasher.HashFile(ctx, src, algorithms)
	if err != nil {
		// HashFile only errors here on cancellation: the algorithm set was
		// already validated by Run.
		b.obs.FileCompleted(src.Name, err)
		return FileResult{Name: src.Name, Size: src.Size, Status: StatusSkipped}
	}

	var cause error
	if fr.Status == StatusFailed {
		for _, algo := range fr.Algorithms {
			if hr := fr.Digests[algo]; hr.Err != nil {
				cause = hr.Err
				break
			}
		}
		b.log.Warn("hashing %q failed: %v", src.Name, cause)
	}
	b.obs.FileCompleted(src.Name, cause)

	return fr
}
