// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cryptoadapt

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
)

// Hash digests b with the named primitive. No ecosystem library improves
// on the standard library's crypto/sha256 and crypto/sha512 here, so this
// stays on stdlib rather than pulling in a third-party hash package.
func Hash(b []byte, id Hashing) ([]byte, error) {
	switch id {
	case SHA256:
		sum := sha256.Sum256(b)
		return sum[:], nil
	case SHA512:
		sum := sha512.Sum512(b)
		return sum[:], nil
	default:
		return nil, fmt.Errorf("cryptoadapt: unsupported hashing id %v", id)
	}
}
