// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cryptoadapt wraps the concrete cryptographic primitives CCLang
// scripts may invoke: hashing, encoding, symmetric encryption, and
// signing. Each algorithm family is named by a small enum so a script can
// carry its choice of primitive as an ordinary stack value.
package cryptoadapt

import "fmt"

// Encoding names a binary/text codec a script can invoke via ENCODE/DECODE.
type Encoding uint8

const (
	Hex Encoding = iota
	Base64
	Base64Url
	Base58Bitcoin
)

// String returns the canonical token spelling used in serialized scripts.
func (e Encoding) String() string {
	switch e {
	case Hex:
		return "Hex"
	case Base64:
		return "Base64"
	case Base64Url:
		return "Base64Url"
	case Base58Bitcoin:
		return "Base58Bitcoin"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// ParseEncoding maps a case-insensitive token to its Encoding, reporting
// ok=false for anything that isn't a recognized encoding name.
func ParseEncoding(tok string) (Encoding, bool) {
	switch lower(tok) {
	case "hex":
		return Hex, true
	case "base64":
		return Base64, true
	case "base64url":
		return Base64Url, true
	case "base58bitcoin":
		return Base58Bitcoin, true
	default:
		return 0, false
	}
}

// Encryption names a symmetric encryption primitive a script can invoke via
// ENCRYPT/DECRYPT.
type Encryption uint8

const (
	XSalsa20Poly1305 Encryption = iota
)

func (e Encryption) String() string {
	switch e {
	case XSalsa20Poly1305:
		return "XSalsa20Poly1305"
	default:
		return fmt.Sprintf("Encryption(%d)", uint8(e))
	}
}

// ParseEncryption maps a case-insensitive token to its Encryption.
func ParseEncryption(tok string) (Encryption, bool) {
	switch lower(tok) {
	case "xsalsa20poly1305":
		return XSalsa20Poly1305, true
	default:
		return 0, false
	}
}

// Signing names a digital-signature primitive a script can invoke via
// SIGN/VERIFY.
type Signing uint8

const (
	Ed25519 Signing = iota
)

func (s Signing) String() string {
	switch s {
	case Ed25519:
		return "Ed25519"
	default:
		return fmt.Sprintf("Signing(%d)", uint8(s))
	}
}

// ParseSigning maps a case-insensitive token to its Signing.
func ParseSigning(tok string) (Signing, bool) {
	switch lower(tok) {
	case "ed25519":
		return Ed25519, true
	default:
		return 0, false
	}
}

// Hashing names a digest primitive a script can invoke via HASH.
type Hashing uint8

const (
	SHA256 Hashing = iota
	SHA512
)

func (h Hashing) String() string {
	switch h {
	case SHA256:
		return "SHA256"
	case SHA512:
		return "SHA512"
	default:
		return fmt.Sprintf("Hashing(%d)", uint8(h))
	}
}

// ParseHashing maps a case-insensitive token to its Hashing.
func ParseHashing(tok string) (Hashing, bool) {
	switch lower(tok) {
	case "sha256":
		return SHA256, true
	case "sha512":
		return SHA512, true
	default:
		return 0, false
	}
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
