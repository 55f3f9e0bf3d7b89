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

package memory

import (
	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
	"golang.org/x/crypto/sha3"
)

func init() {
	register(engines.SHA3_256, 32, sha3.New256)
	register(engines.SHA3_384, 48, sha3.New384)
	register(engines.SHA3_512, 64, sha3.New512)
}
