// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cryptoadapt

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	encryptionPlaintextHex = "455a8ecfd265c6e4ce63e590679a6e68b1e34b3112cdfe3e655fa47c545ae3f4f13bc066d289ec1d59eda208578d0040ad69d37411ae044583ca2c844ebcc099"
	encryptionKeyHex       = "7e874bde68d5a1f99dc0675c22f4b94705b259b7e6033dc31e598b1f6cc330f7"
	encryptionNonceHex     = "a65af86b4856df7f655ff71132af566a736b91e24a11e114"
	encryptionCiphertext   = "64a5fa3599adffef7ca387345760900d1fdb95b74b572b4ac42150f29f11105f7258e5bc135427e9f3c9b1340882de656a4fe7d789e85f9c0b9156ea8bc28692f29d0ba4991fed9daf956d174f75e058"
)

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestEncryptXSalsa20Poly1305(t *testing.T) {
	plaintext := decodeHex(t, encryptionPlaintextHex)
	key := decodeHex(t, encryptionKeyHex)
	nonce := decodeHex(t, encryptionNonceHex)
	want := decodeHex(t, encryptionCiphertext)

	got, err := Encrypt(plaintext, key, nonce, XSalsa20Poly1305)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecryptXSalsa20Poly1305(t *testing.T) {
	ciphertext := decodeHex(t, encryptionCiphertext)
	key := decodeHex(t, encryptionKeyHex)
	nonce := decodeHex(t, encryptionNonceHex)
	want := decodeHex(t, encryptionPlaintextHex)

	got, err := Decrypt(ciphertext, key, nonce, XSalsa20Poly1305)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecryptWrongKeyFails(t *testing.T) {
	ciphertext := decodeHex(t, encryptionCiphertext)
	nonce := decodeHex(t, encryptionNonceHex)
	wrongKey := make([]byte, secretboxKeyLen)

	_, err := Decrypt(ciphertext, wrongKey, nonce, XSalsa20Poly1305)
	assert.Error(t, err)
}

func TestEncryptRejectsWrongSizedKey(t *testing.T) {
	_, err := Encrypt([]byte("hi"), []byte("too-short"), make([]byte, secretboxNonceLen), XSalsa20Poly1305)
	assert.Error(t, err)
}
