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
	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
	"github.com/spf13/cobra"
)

// VerifyOptions holds the flags of the verify subcommand.
type VerifyOptions struct {
	Algorithm string // --algorithm
	Digest    string // --digest (required)
}

var _ Interface = (*VerifyOptions)(nil)

// AddFlags implements Interface.
func (o *VerifyOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Algorithm, "algorithm", "a", string(engines.SHA256),
		"hash algorithm the expected digest was computed with")
	cmd.Flags().StringVarP(&o.Digest, "digest", "d", "",
		"expected hex digest to compare against")
	_ = cmd.MarkFlagRequired("digest")
}
