// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cryptoadapt

import (
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	secretboxKeyLen   = 32
	secretboxNonceLen = 24
)

// Encrypt seals plaintext under key/nonce using the named primitive. Key
// and nonce must be exactly the primitive's fixed length.
func Encrypt(plaintext, key, nonce []byte, id Encryption) ([]byte, error) {
	switch id {
	case XSalsa20Poly1305:
		var k [secretboxKeyLen]byte
		var n [secretboxNonceLen]byte
		if len(key) != secretboxKeyLen {
			return nil, fmt.Errorf("cryptoadapt: XSalsa20Poly1305 key must be %d bytes, got %d", secretboxKeyLen, len(key))
		}
		if len(nonce) != secretboxNonceLen {
			return nil, fmt.Errorf("cryptoadapt: XSalsa20Poly1305 nonce must be %d bytes, got %d", secretboxNonceLen, len(nonce))
		}
		copy(k[:], key)
		copy(n[:], nonce)
		return secretbox.Seal(nil, plaintext, &n, &k), nil
	default:
		return nil, fmt.Errorf("cryptoadapt: unsupported encryption id %v", id)
	}
}

// Decrypt opens ciphertext under key/nonce using the named primitive. It
// fails when the AEAD tag does not verify or the key/nonce are mis-sized.
func Decrypt(ciphertext, key, nonce []byte, id Encryption) ([]byte, error) {
	switch id {
	case XSalsa20Poly1305:
		var k [secretboxKeyLen]byte
		var n [secretboxNonceLen]byte
		if len(key) != secretboxKeyLen {
			return nil, fmt.Errorf("cryptoadapt: XSalsa20Poly1305 key must be %d bytes, got %d", secretboxKeyLen, len(key))
		}
		if len(nonce) != secretboxNonceLen {
			return nil, fmt.Errorf("cryptoadapt: XSalsa20Poly1305 nonce must be %d bytes, got %d", secretboxNonceLen, len(nonce))
		}
		copy(k[:], key)
		copy(n[:], nonce)
		plaintext, ok := secretbox.Open(nil, ciphertext, &n, &k)
		if !ok {
			return nil, fmt.Errorf("cryptoadapt: XSalsa20Poly1305 authentication failed")
		}
		return plaintext, nil
	default:
		return nil, fmt.Errorf("cryptoadapt: unsupported encryption id %v", id)
	}
}
