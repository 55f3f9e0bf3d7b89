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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
	_ "github.com/atikktokk/hash-tool/pkg/hashing/engines/memory" // register engines
)

// Algorithms creates the algorithms subcommand.
func Algorithms() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported hash algorithms.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, algo := range engines.SupportedAlgorithms() {
				fmt.Fprintln(cmd.OutOrStdout(), algo)
			}
			return nil
		},
	}
}
