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

package options

import (
	"github.com/atikktokk/hash-tool/pkg/hashing"
	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
	"github.com/spf13/cobra"
)

// HashOptions holds the flags of the hash subcommand.
type HashOptions struct {
	Algorithms  []string // --algorithm (repeatable)
	ChunkSize   int      // --chunk-size
	MaxFileSize int64    // --max-file-size
	Workers     int      // --workers
	NoProgress  bool     // --no-progress
	Export      string   // --export
	ExportFile  string   // --export-file
}

var _ Interface = (*HashOptions)(nil)

// AddFlags implements Interface.
func (o *HashOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&o.Algorithms, "algorithm", "a", []string{string(engines.SHA256)},
		"hash algorithm to compute (repeatable, see 'hashtool algorithms')")
	cmd.Flags().IntVar(&o.ChunkSize, "chunk-size", hashing.DefaultChunkSize,
		"read buffer size in bytes")
	cmd.Flags().Int64Var(&o.MaxFileSize, "max-file-size", hashing.DefaultMaxFileSize,
		"maximum file size in bytes")
	cmd.Flags().IntVar(&o.Workers, "workers", hashing.DefaultMaxWorkers,
		"number of files hashed concurrently")
	cmd.Flags().BoolVar(&o.NoProgress, "no-progress", false,
		"disable the progress display")
	cmd.Flags().StringVar(&o.Export, "export", "",
		"also write results in the given format (csv, text)")
	cmd.Flags().StringVar(&o.ExportFile, "export-file", "",
		"export destination (default: timestamped name in the working directory)")
	_ = cmd.MarkFlagFilename("export-file", "csv", "txt")
}

// AlgorithmSet converts the flag values to algorithm identifiers.
func (o *HashOptions) AlgorithmSet() []engines.Algorithm {
	algorithms := make([]engines.Algorithm, 0, len(o.Algorithms))
	for _, a := range o.Algorithms {
		algorithms = append(algorithms, engines.Algorithm(a))
	}
	return algorithms
}

// NewConfig builds the hashing configuration from the flags.
func (o *HashOptions) NewConfig() *hashing.Config {
	return hashing.NewConfig().
		SetChunkSize(o.ChunkSize).
		SetMaxFileSize(o.MaxFileSize).
		SetMaxWorkers(o.Workers)
}
