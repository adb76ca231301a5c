// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cclang

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cclang-run/cclang/cryptoadapt"
	"github.com/cclang-run/cclang/ioengine"
)

// Text renders s in its canonical textual form: the space-joined token
// representation of every instruction, per §6.1. It fails if s contains
// a Handle, which has no valid textual form, or a Text value containing
// whitespace, which the tokenizer could not read back as one token.
func (s Script) Text() (string, error) {
	toks := make([]string, 0, s.Len())
	for _, v := range s.values {
		if v.Kind == KindHandle {
			return "", scriptError(ErrSerialization, "cannot serialize a Handle value")
		}
		if v.Kind == KindText && strings.IndexFunc(v.Text, unicode.IsSpace) >= 0 {
			return "", scriptError(ErrSerialization, "cannot serialize a Text value containing whitespace")
		}
		toks = append(toks, v.String())
	}
	return strings.Join(toks, " "), nil
}

// ParseScript tokenizes text into a Script per §4.2's greedy, fixed-order
// grammar: Encoding → Encryption → Signing → Hashing → Mode → Whence →
// keyword → signed integer → Text fallback.
func ParseScript(text string) (Script, error) {
	fields := strings.Fields(text)
	values := make([]Value, 0, len(fields))
	for _, tok := range fields {
		values = append(values, parseToken(tok))
	}
	return NewScript(values...), nil
}

func parseToken(tok string) Value {
	if tok == "TRUE" {
		return Bool(true)
	}
	if tok == "FALSE" {
		return Bool(false)
	}
	if enc, ok := parseEncodingToken(tok); ok {
		return enc
	}
	if encr, ok := parseEncryptionToken(tok); ok {
		return encr
	}
	if sig, ok := parseSigningToken(tok); ok {
		return sig
	}
	if hsh, ok := parseHashingToken(tok); ok {
		return hsh
	}
	if mode, ok := ioengine.ParseMode(tok); ok {
		return ModeVal(mode)
	}
	if whence, ok := ioengine.ParseWhence(tok); ok {
		return WhenceVal(whence)
	}
	if op, ok := tokenOpcodes[tok]; ok {
		return Op(op)
	}
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return Idx(n)
	}
	return Str(tok)
}

func parseEncodingToken(tok string) (Value, bool) {
	id, ok := cryptoadapt.ParseEncoding(tok)
	if !ok {
		return Value{}, false
	}
	return EncodingID(id), true
}

func parseEncryptionToken(tok string) (Value, bool) {
	id, ok := cryptoadapt.ParseEncryption(tok)
	if !ok {
		return Value{}, false
	}
	return EncryptionID(id), true
}

func parseSigningToken(tok string) (Value, bool) {
	id, ok := cryptoadapt.ParseSigning(tok)
	if !ok {
		return Value{}, false
	}
	return SigningID(id), true
}

func parseHashingToken(tok string) (Value, bool) {
	id, ok := cryptoadapt.ParseHashing(tok)
	if !ok {
		return Value{}, false
	}
	return HashingID(id), true
}
