// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cclang

import (
	"context"
	"fmt"

	"github.com/blang/semver/v4"

	"github.com/cclang-run/cclang/cryptoadapt"
)

// executeOpcode dispatches a single instruction per §4.3, mutating the
// Machine's stacks and instruction pointer.
func (m *Machine) executeOpcode(ctx context.Context, op Opcode) error {
	switch op {
	case OpVersion:
		return m.execVersion()
	case OpEqual:
		return m.execCompare(op)
	case OpNotEqual:
		return m.execCompare(op)
	case OpLessThan, OpLessThanEqual, OpGreaterThan, OpGreaterThanEqual:
		return m.execCompare(op)
	case OpEncode:
		return m.execEncode()
	case OpDecode:
		return m.execDecode()
	case OpHash:
		return m.execHash()
	case OpEncrypt:
		return m.execEncrypt()
	case OpDecrypt:
		return m.execDecrypt()
	case OpSign:
		return m.execSign()
	case OpVerify:
		return m.execVerify()
	case OpConcat:
		return m.execConcat()
	case OpSlice:
		return m.execSlice()
	case OpDup:
		return m.execDup()
	case OpPop:
		return m.execPop()
	case OpOpen:
		return m.execOpen(ctx)
	case OpRead:
		return m.execRead(ctx)
	case OpWrite:
		return m.execWrite(ctx)
	case OpSeek:
		return m.execSeek(ctx)
	case OpClose:
		return m.execClose(ctx)
	case OpIf:
		return m.execIf()
	case OpElse:
		return m.execElse()
	case OpFi:
		return m.execFi()
	default:
		return scriptError(ErrShape, fmt.Sprintf("unknown opcode %v", op))
	}
}

// --- typed pop helpers -----------------------------------------------

func (m *Machine) popKind(k Kind, what string) (Value, error) {
	v, err := m.vstack.pop()
	if err != nil {
		return Value{}, err
	}
	if v.Kind != k {
		return Value{}, scriptError(ErrShape, fmt.Sprintf("expected %s, got %v", what, v))
	}
	return v, nil
}

func (m *Machine) popBinary() ([]byte, error) {
	v, err := m.popKind(KindBinary, "Binary")
	if err != nil {
		return nil, err
	}
	return v.Binary, nil
}

func (m *Machine) popText() (string, error) {
	v, err := m.popKind(KindText, "Text")
	if err != nil {
		return "", err
	}
	return v.Text, nil
}

func (m *Machine) popIndex() (int64, error) {
	v, err := m.popKind(KindIndex, "Index")
	if err != nil {
		return 0, err
	}
	return v.Index, nil
}

func (m *Machine) popBool() (bool, error) {
	v, err := m.popKind(KindBoolean, "Boolean")
	if err != nil {
		return false, err
	}
	return v.Boolean, nil
}

// --- instruction semantics --------------------------------------------

func (m *Machine) execVersion() error {
	vtext, err := m.popText()
	if err != nil {
		return err
	}
	ver, err := semver.Parse(vtext)
	if err != nil {
		return scriptError(ErrCrypto, fmt.Sprintf("invalid version string %q: %v", vtext, err))
	}
	m.vstack.push(Bool(m.versionReq(ver)))
	return nil
}

func (m *Machine) execCompare(op Opcode) error {
	right, err := m.vstack.pop()
	if err != nil {
		return err
	}
	left, err := m.vstack.pop()
	if err != nil {
		return err
	}

	switch op {
	case OpEqual:
		m.vstack.push(Bool(equalValues(left, right)))
		return nil
	case OpNotEqual:
		m.vstack.push(Bool(!equalValues(left, right)))
		return nil
	}

	cmp, ok := orderValues(left, right)
	if !ok {
		return scriptError(ErrShape, fmt.Sprintf("values of kind %v and %v are not orderable", left.Kind, right.Kind))
	}
	switch op {
	case OpLessThan:
		m.vstack.push(Bool(cmp < 0))
	case OpLessThanEqual:
		m.vstack.push(Bool(cmp <= 0))
	case OpGreaterThan:
		m.vstack.push(Bool(cmp > 0))
	case OpGreaterThanEqual:
		m.vstack.push(Bool(cmp >= 0))
	}
	return nil
}

func (m *Machine) execEncode() error {
	idv, err := m.popKind(KindEncoding, "EncodingId")
	if err != nil {
		return err
	}
	b, err := m.popBinary()
	if err != nil {
		return err
	}
	s, err := cryptoadapt.Encode(b, idv.Encoding)
	if err != nil {
		return scriptError(ErrEncoding, err.Error())
	}
	m.vstack.push(Str(s))
	return nil
}

func (m *Machine) execDecode() error {
	idv, err := m.popKind(KindEncoding, "EncodingId")
	if err != nil {
		return err
	}
	s, err := m.popText()
	if err != nil {
		return err
	}
	b, err := cryptoadapt.Decode(s, idv.Encoding)
	if err != nil {
		return scriptError(ErrEncoding, err.Error())
	}
	m.vstack.push(Bin(b))
	return nil
}

func (m *Machine) execHash() error {
	idv, err := m.popKind(KindHashing, "HashingId")
	if err != nil {
		return err
	}
	b, err := m.popBinary()
	if err != nil {
		return err
	}
	h, err := cryptoadapt.Hash(b, idv.Hashing)
	if err != nil {
		return scriptError(ErrCrypto, err.Error())
	}
	m.vstack.push(Bin(h))
	return nil
}

func (m *Machine) execEncrypt() error {
	idv, err := m.popKind(KindEncryption, "EncryptionId")
	if err != nil {
		return err
	}
	nonce, err := m.popBinary()
	if err != nil {
		return err
	}
	key, err := m.popBinary()
	if err != nil {
		return err
	}
	plaintext, err := m.popBinary()
	if err != nil {
		return err
	}
	ciphertext, err := cryptoadapt.Encrypt(plaintext, key, nonce, idv.Encryption)
	if err != nil {
		return scriptError(ErrCrypto, err.Error())
	}
	m.vstack.push(Bin(ciphertext))
	return nil
}

func (m *Machine) execDecrypt() error {
	idv, err := m.popKind(KindEncryption, "EncryptionId")
	if err != nil {
		return err
	}
	nonce, err := m.popBinary()
	if err != nil {
		return err
	}
	key, err := m.popBinary()
	if err != nil {
		return err
	}
	ciphertext, err := m.popBinary()
	if err != nil {
		return err
	}
	plaintext, err := cryptoadapt.Decrypt(ciphertext, key, nonce, idv.Encryption)
	if err != nil {
		return scriptError(ErrCrypto, err.Error())
	}
	m.vstack.push(Bin(plaintext))
	return nil
}

func (m *Machine) execSign() error {
	idv, err := m.popKind(KindSigning, "SigningId")
	if err != nil {
		return err
	}
	secretKey, err := m.popBinary()
	if err != nil {
		return err
	}
	message, err := m.popBinary()
	if err != nil {
		return err
	}
	sig, err := cryptoadapt.Sign(message, secretKey, idv.Signing)
	if err != nil {
		return scriptError(ErrCrypto, err.Error())
	}
	m.vstack.push(Bin(sig))
	return nil
}

func (m *Machine) execVerify() error {
	idv, err := m.popKind(KindSigning, "SigningId")
	if err != nil {
		return err
	}
	message, err := m.popBinary()
	if err != nil {
		return err
	}
	publicKey, err := m.popBinary()
	if err != nil {
		return err
	}
	signature, err := m.popBinary()
	if err != nil {
		return err
	}

	if m.sigCache != nil && m.sigCache.Exists(message, publicKey, signature) {
		m.vstack.push(Bool(true))
		return nil
	}

	ok, err := cryptoadapt.Verify(message, publicKey, signature, idv.Signing)
	if err != nil {
		return scriptError(ErrCrypto, err.Error())
	}
	if ok && m.sigCache != nil {
		m.sigCache.Add(message, publicKey, signature)
	}
	m.vstack.push(Bool(ok))
	return nil
}

func (m *Machine) execConcat() error {
	right, err := m.popBinary()
	if err != nil {
		return err
	}
	left, err := m.popBinary()
	if err != nil {
		return err
	}
	out := make([]byte, 0, len(left)+len(right))
	out = append(out, left...)
	out = append(out, right...)
	m.vstack.push(Bin(out))
	return nil
}

func (m *Machine) execSlice() error {
	end, err := m.popIndex()
	if err != nil {
		return err
	}
	begin, err := m.popIndex()
	if err != nil {
		return err
	}
	b, err := m.popBinary()
	if err != nil {
		return err
	}
	if begin < 0 || end < begin || end > int64(len(b)) {
		return scriptError(ErrShape, fmt.Sprintf("slice bounds [%d:%d] out of range for binary of length %d", begin, end, len(b)))
	}
	out := make([]byte, end-begin)
	copy(out, b[begin:end])
	m.vstack.push(Bin(out))
	return nil
}

func (m *Machine) execDup() error {
	top, err := m.vstack.peek()
	if err != nil {
		return err
	}
	m.vstack.push(top)
	return nil
}

func (m *Machine) execPop() error {
	_, err := m.vstack.pop()
	return err
}
