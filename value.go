// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cclang implements the CCLang stack-based bytecode language and
// its Machine: a small interpreter for expressing cryptographic
// predicates — most importantly, detached-signature verification — as
// serializable sequences of tokens.
package cclang

import (
	"fmt"

	"github.com/cclang-run/cclang/cryptoadapt"
	"github.com/cclang-run/cclang/ioengine"
)

// Kind discriminates the variants of Value.
type Kind uint8

const (
	KindBoolean Kind = iota
	KindBinary
	KindText
	KindIndex
	KindEncoding
	KindEncryption
	KindSigning
	KindHashing
	KindMode
	KindWhence
	KindHandle
	KindOpcode
)

// Opcode names an executable instruction.
type Opcode uint8

const (
	OpVersion Opcode = iota
	OpOpen
	OpRead
	OpWrite
	OpSeek
	OpClose
	OpEqual
	OpNotEqual
	OpLessThan
	OpLessThanEqual
	OpGreaterThan
	OpGreaterThanEqual
	OpEncode
	OpDecode
	OpEncrypt
	OpDecrypt
	OpSign
	OpVerify
	OpHash
	OpConcat
	OpSlice
	OpDup
	OpPop
	OpIf
	OpElse
	OpFi
)

// opcodeTokens gives each Opcode its canonical serialized token.
var opcodeTokens = map[Opcode]string{
	OpVersion:          "CCLANG",
	OpOpen:             "OPEN",
	OpRead:             "READ",
	OpWrite:            "WRITE",
	OpSeek:             "SEEK",
	OpClose:            "CLOSE",
	OpEqual:            "=",
	OpNotEqual:         "!=",
	OpLessThan:         "<",
	OpLessThanEqual:    "<=",
	OpGreaterThan:      ">",
	OpGreaterThanEqual: ">=",
	OpEncode:           "ENCODE",
	OpDecode:           "DECODE",
	OpEncrypt:          "ENCRYPT",
	OpDecrypt:          "DECRYPT",
	OpSign:             "SIGN",
	OpVerify:           "VERIFY",
	OpHash:             "HASH",
	OpConcat:           "CONCAT",
	OpSlice:            "SLICE",
	OpDup:              "DUP",
	OpPop:              "POP",
	OpIf:               "IF",
	OpElse:             "ELSE",
	OpFi:               "FI",
}

var tokenOpcodes = func() map[string]Opcode {
	m := make(map[string]Opcode, len(opcodeTokens))
	for op, tok := range opcodeTokens {
		m[tok] = op
	}
	return m
}()

func (op Opcode) String() string {
	if tok, ok := opcodeTokens[op]; ok {
		return tok
	}
	return fmt.Sprintf("Opcode(%d)", uint8(op))
}

// Value is the uniform tagged cell CCLang pushes, pops, and dispatches
// on: every stack item and every instruction in a Script is a Value.
// Only the fields matching Kind are meaningful; the rest are zero.
type Value struct {
	Kind       Kind
	Boolean    bool
	Binary     []byte
	Text       string
	Index      int64
	Encoding   cryptoadapt.Encoding
	Encryption cryptoadapt.Encryption
	Signing    cryptoadapt.Signing
	Hashing    cryptoadapt.Hashing
	Mode       ioengine.Mode
	Whence     ioengine.Whence
	Handle     ioengine.Handle
	Opcode     Opcode
}

func Bool(b bool) Value           { return Value{Kind: KindBoolean, Boolean: b} }
func Bin(b []byte) Value          { return Value{Kind: KindBinary, Binary: b} }
func Str(s string) Value          { return Value{Kind: KindText, Text: s} }
func Idx(i int64) Value           { return Value{Kind: KindIndex, Index: i} }
func EncodingID(e cryptoadapt.Encoding) Value     { return Value{Kind: KindEncoding, Encoding: e} }
func EncryptionID(e cryptoadapt.Encryption) Value { return Value{Kind: KindEncryption, Encryption: e} }
func SigningID(s cryptoadapt.Signing) Value       { return Value{Kind: KindSigning, Signing: s} }
func HashingID(h cryptoadapt.Hashing) Value       { return Value{Kind: KindHashing, Hashing: h} }
func ModeVal(m ioengine.Mode) Value     { return Value{Kind: KindMode, Mode: m} }
func WhenceVal(w ioengine.Whence) Value { return Value{Kind: KindWhence, Whence: w} }
func HandleVal(h ioengine.Handle) Value { return Value{Kind: KindHandle, Handle: h} }
func Op(op Opcode) Value                { return Value{Kind: KindOpcode, Opcode: op} }

// IsOpcode reports whether v represents an instruction rather than a
// data literal.
func (v Value) IsOpcode() bool {
	return v.Kind == KindOpcode
}

// String renders v in its canonical serialized token spelling. Handle
// has no valid textual form; callers must not serialize one (see
// Script.Text).
func (v Value) String() string {
	switch v.Kind {
	case KindBoolean:
		if v.Boolean {
			return "TRUE"
		}
		return "FALSE"
	case KindBinary:
		return fmt.Sprintf("%x Hex DECODE", v.Binary)
	case KindText:
		return v.Text
	case KindIndex:
		return fmt.Sprintf("%d", v.Index)
	case KindEncoding:
		return v.Encoding.String()
	case KindEncryption:
		return v.Encryption.String()
	case KindSigning:
		return v.Signing.String()
	case KindHashing:
		return v.Hashing.String()
	case KindMode:
		return v.Mode.String()
	case KindWhence:
		return v.Whence.String()
	case KindHandle:
		return "<handle>"
	case KindOpcode:
		return v.Opcode.String()
	default:
		return fmt.Sprintf("Value(kind=%d)", v.Kind)
	}
}

// asIndex coerces v to an int64 for Boolean/Index comparison purposes,
// reporting ok=false for any other Kind.
func (v Value) asIndex() (int64, bool) {
	switch v.Kind {
	case KindIndex:
		return v.Index, true
	case KindBoolean:
		if v.Boolean {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// equalValues implements §4.1's Equal semantics: matching tags compare
// structurally, Boolean/Index pairs coerce (any nonzero Index equals
// true, zero equals false), everything else is unequal.
func equalValues(a, b Value) bool {
	if a.Kind == KindBoolean || a.Kind == KindIndex {
		if b.Kind == KindBoolean || b.Kind == KindIndex {
			ai, _ := a.asIndex()
			bi, _ := b.asIndex()
			if a.Kind == KindBoolean || b.Kind == KindBoolean {
				return (ai != 0) == (bi != 0)
			}
			return ai == bi
		}
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindBinary:
		if len(a.Binary) != len(b.Binary) {
			return false
		}
		for i := range a.Binary {
			if a.Binary[i] != b.Binary[i] {
				return false
			}
		}
		return true
	case KindText:
		return a.Text == b.Text
	case KindEncoding:
		return a.Encoding == b.Encoding
	case KindEncryption:
		return a.Encryption == b.Encryption
	case KindSigning:
		return a.Signing == b.Signing
	case KindHashing:
		return a.Hashing == b.Hashing
	case KindMode:
		return a.Mode == b.Mode
	case KindWhence:
		return a.Whence == b.Whence
	case KindHandle:
		return a.Handle == b.Handle
	case KindOpcode:
		return a.Opcode == b.Opcode
	default:
		return false
	}
}

// orderValues implements the ordering comparisons (<, <=, >, >=). It
// reports ok=false when the pair has no defined order, per §4.1.
func orderValues(a, b Value) (cmp int, ok bool) {
	if ai, aok := a.asIndex(); aok {
		if bi, bok := b.asIndex(); bok {
			switch {
			case ai < bi:
				return -1, true
			case ai > bi:
				return 1, true
			default:
				return 0, true
			}
		}
	}
	if a.Kind != b.Kind {
		return 0, false
	}
	switch a.Kind {
	case KindBinary:
		return compareBytes(a.Binary, b.Binary), true
	case KindText:
		switch {
		case a.Text < b.Text:
			return -1, true
		case a.Text > b.Text:
			return 1, true
		default:
			return 0, true
		}
	default:
		return 0, false
	}
}

func compareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
