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

package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/atikktokk/hash-tool/cmd/hashtool/cli/options"
	"github.com/atikktokk/hash-tool/pkg/export"
	"github.com/atikktokk/hash-tool/pkg/hashing"
	hashio "github.com/atikktokk/hash-tool/pkg/hashing/engines/io"
	_ "github.com/atikktokk/hash-tool/pkg/hashing/engines/memory" // register engines
	"github.com/atikktokk/hash-tool/pkg/tracing"
)

// Hash creates the hash subcommand.
func Hash() *cobra.Command {
	o := &options.HashOptions{}

	long := `Compute digests of one or more files.

Each file is streamed once; all selected algorithms absorb the same pass,
so hashing a file with three algorithms costs one read. A failure in one
file (unreadable, over the size limit) is reported for that file only and
does not stop the rest of the batch.`

	cmd := &cobra.Command{
		Use:   "hash [OPTIONS] FILE...",
		Short: "Compute digests of one or more files.",
		Long:  long,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(cmd.Context(), o, args)
		},
	}

	o.AddFlags(cmd)
	return cmd
}

func runHash(ctx context.Context, o *options.HashOptions, paths []string) error {
	obs := ro.NewObservability()

	sources := make([]hashio.Source, 0, len(paths))
	for _, path := range paths {
		src, err := hashio.FileSource(path)
		if err != nil {
			return err
		}
		sources = append(sources, src)
	}

	var reporter hashing.Observer
	if !o.NoProgress {
		reporter = newProgressReporter(os.Stderr)
	}

	batch, err := hashing.NewBatch(o.NewConfig(), reporter, obs.Logger)
	if err != nil {
		return err
	}

	algorithms := o.AlgorithmSet()
	attrs := map[string]interface{}{
		"hashtool.files":      len(sources),
		"hashtool.algorithms": fmt.Sprintf("%v", algorithms),
		"hashtool.workers":    o.Workers,
	}

	var result hashing.BatchResult
	err = tracing.Run(ctx, "Hash", attrs, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, ro.Timeout)
		defer cancel()

		var runErr error
		result, runErr = batch.Run(ctx, sources, algorithms)
		return runErr
	})
	if err != nil {
		return err
	}

	if err := printBatch(os.Stdout, result); err != nil {
		return err
	}

	if o.Export != "" {
		if err := exportBatch(o, result); err != nil {
			return err
		}
	}

	if result.Succeeded < result.Attempted {
		return fmt.Errorf("%d of %d file(s) failed", result.Attempted-result.Succeeded, result.Attempted)
	}
	return nil
}

// printBatch writes the text report to the command's output.
func printBatch(w *os.File, result hashing.BatchResult) error {
	exp := &export.TextExporter{}
	return exp.Export(w, result)
}

// exportBatch additionally writes the results in the requested format.
func exportBatch(o *options.HashOptions, result hashing.BatchResult) error {
	exp, err := export.New(o.Export)
	if err != nil {
		return err
	}

	path := o.ExportFile
	if path == "" {
		path = export.Filename(exp, time.Now())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file %q: %w", path, err)
	}
	defer f.Close()

	if err := exp.Export(f, result); err != nil {
		return fmt.Errorf("export results: %w", err)
	}
	return nil
}
