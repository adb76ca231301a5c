// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cclang

import "fmt"

// ErrorCode identifies a class of CCLang execution or serialization
// failure so a caller can branch on error kind with errors.Is, the way
// callers branch on txscript's ErrorCode.
type ErrorCode int

const (
	// ErrShape indicates wrong arity or wrong Value variant for an
	// opcode's operands.
	ErrShape ErrorCode = iota

	// ErrCrypto indicates a malformed key, nonce, or signature, a
	// failed AEAD tag, or an invalid version string.
	ErrCrypto

	// ErrEncoding indicates textual input that is not valid for the
	// stated codec.
	ErrEncoding

	// ErrControlFlow indicates an unmatched IF/ELSE/FI.
	ErrControlFlow

	// ErrBackend indicates an I/O operation failure surfaced by the
	// backend.
	ErrBackend

	// ErrSerialization indicates an unparseable or ambiguous token
	// stream, or an attempt to serialize a Handle.
	ErrSerialization
)

// String returns the human-readable name of the error code.
func (e ErrorCode) String() string {
	switch e {
	case ErrShape:
		return "ErrShape"
	case ErrCrypto:
		return "ErrCrypto"
	case ErrEncoding:
		return "ErrEncoding"
	case ErrControlFlow:
		return "ErrControlFlow"
	case ErrBackend:
		return "ErrBackend"
	case ErrSerialization:
		return "ErrSerialization"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(e))
	}
}

// Error identifies a CCLang execution or serialization failure by code
// plus a human-readable description, following the shape of txscript's
// own scriptError/Error pair.
type Error struct {
	Code        ErrorCode
	Description string
}

func (e Error) Error() string {
	return e.Description
}

// Is reports whether target is the same ErrorCode, so callers can use
// errors.Is(err, cclang.Error{Code: cclang.ErrShape}).
func (e Error) Is(target error) bool {
	other, ok := target.(Error)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

// scriptError is the constructor every opcode failure funnels through.
func scriptError(code ErrorCode, desc string) Error {
	return Error{Code: code, Description: desc}
}
