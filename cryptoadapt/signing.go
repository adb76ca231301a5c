// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cryptoadapt

import (
	stded25519 "crypto/ed25519"
	"fmt"
)

// Sign produces a detached signature over message under the named
// primitive. secretKey must be the primitive's full secret-key encoding
// (for Ed25519, the 64-byte seed||publicKey form).
func Sign(message, secretKey []byte, id Signing) ([]byte, error) {
	switch id {
	case Ed25519:
		if len(secretKey) != stded25519.PrivateKeySize {
			return nil, fmt.Errorf("cryptoadapt: Ed25519 secret key must be %d bytes, got %d", stded25519.PrivateKeySize, len(secretKey))
		}
		sig := stded25519.Sign(stded25519.PrivateKey(secretKey), message)
		return sig, nil
	default:
		return nil, fmt.Errorf("cryptoadapt: unsupported signing id %v", id)
	}
}

// Verify checks a detached signature over message against publicKey under
// the named primitive.
func Verify(message, publicKey, signature []byte, id Signing) (bool, error) {
	switch id {
	case Ed25519:
		if len(publicKey) != stded25519.PublicKeySize {
			return false, fmt.Errorf("cryptoadapt: Ed25519 public key must be %d bytes, got %d", stded25519.PublicKeySize, len(publicKey))
		}
		if len(signature) != stded25519.SignatureSize {
			return false, fmt.Errorf("cryptoadapt: Ed25519 signature must be %d bytes, got %d", stded25519.SignatureSize, len(signature))
		}
		return stded25519.Verify(stded25519.PublicKey(publicKey), message, signature), nil
	default:
		return false, fmt.Errorf("cryptoadapt: unsupported signing id %v", id)
	}
}
