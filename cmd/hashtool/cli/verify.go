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

	"github.com/spf13/cobra"

	"github.com/atikktokk/hash-tool/cmd/hashtool/cli/options"
	"github.com/atikktokk/hash-tool/pkg/hashing"
	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
	hashio "github.com/atikktokk/hash-tool/pkg/hashing/engines/io"
	_ "github.com/atikktokk/hash-tool/pkg/hashing/engines/memory" // register engines
	"github.com/atikktokk/hash-tool/pkg/tracing"
)

// Verify creates the verify subcommand.
func Verify() *cobra.Command {
	o := &options.VerifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify [OPTIONS] FILE",
		Short: "Check a file against an expected digest.",
		Long: `Check that FILE's digest matches an expected value.

The file is streamed once with the given algorithm and the computed digest
is compared case-insensitively against --digest. A mismatch exits non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd.Context(), o, args[0])
		},
	}

	o.AddFlags(cmd)
	return cmd
}

func runVerify(ctx context.Context, o *options.VerifyOptions, path string) error {
	src, err := hashio.FileSource(path)
	if err != nil {
		return err
	}

	hasher, err := hashing.NewHasher(nil, nil)
	if err != nil {
		return err
	}

	attrs := map[string]interface{}{
		"hashtool.file":      src.Name,
		"hashtool.algorithm": o.Algorithm,
	}
	return tracing.Run(ctx, "Verify", attrs, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, ro.Timeout)
		defer cancel()

		match, hr, err := hasher.Verify(ctx, src, engines.Algorithm(o.Algorithm), o.Digest)
		if err != nil {
			return err
		}
		if !match {
			return fmt.Errorf("digest mismatch for %s: computed %s", src.Name, hr.Digest)
		}

		fmt.Printf("%s: OK (%s)\n", src.Name, hr.Algorithm)
		return nil
	})
}
