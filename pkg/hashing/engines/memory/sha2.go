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
	"crypto/md5"  //nolint:gosec // offered for checksum compatibility, not security
	"crypto/sha1" //nolint:gosec // offered for checksum compatibility, not security
	"crypto/sha256"
	"crypto/sha512"

	"github.com/atikktokk/hash-tool/pkg/hashing/engines"
)

func init() {
	register(engines.MD5, md5.Size, md5.New)
	register(engines.SHA1, sha1.Size, sha1.New)
	register(engines.SHA224, sha256.Size224, sha256.New224)
	register(engines.SHA256, sha256.Size, sha256.New)
	register(engines.SHA384, sha512.Size384, sha512.New384)
	register(engines.SHA512, sha512.Size, sha512.New)
}
