// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cclang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cclang-run/cclang/cryptoadapt"
)

func onlyBool(t *testing.T, stack []Value) bool {
	t.Helper()
	require.Len(t, stack, 1)
	require.Equal(t, KindBoolean, stack[0].Kind)
	return stack[0].Boolean
}

func TestBooleanIndexEqualityTrueZero(t *testing.T) {
	stack := runStack(t, NewScript(Bool(true), Idx(0), Op(OpEqual)))
	assert.False(t, onlyBool(t, stack))
}

func TestBooleanIndexEqualityFalseZero(t *testing.T) {
	stack := runStack(t, NewScript(Bool(false), Idx(0), Op(OpEqual)))
	assert.True(t, onlyBool(t, stack))
}

func TestHashSHA256Predicate(t *testing.T) {
	const msgHex = "fde223e5919f671b0423ae3fa39f3f91992066b7f134323fbda965f7b903080a535a7e5315bf77a980b760d80de4e1a0c20487485cd7f7274480a4f3269aa9ef"
	const wantHex = "d19242361d4e1faacb8f7561b7fc2eaf02b09bb9a449377d944a0e0142851b21"

	want, err := cryptoadapt.Decode(wantHex, cryptoadapt.Hex)
	require.NoError(t, err)

	script := NewScript(
		Bin(want),
		Str(msgHex), EncodingID(cryptoadapt.Hex), Op(OpDecode),
		HashingID(cryptoadapt.SHA256), Op(OpHash),
		Op(OpEqual),
	)
	stack := runStack(t, script)
	assert.True(t, onlyBool(t, stack))
}

func TestConcatThenSlice(t *testing.T) {
	script := NewScript(
		Bin([]byte("foo")), Bin([]byte("bar")), Op(OpConcat),
		Idx(0), Idx(3), Op(OpSlice),
	)
	stack := runStack(t, script)
	require.Len(t, stack, 1)
	assert.Equal(t, []byte("foo"), stack[0].Binary)
}

func TestSliceOutOfBoundsIsShapeError(t *testing.T) {
	script := NewScript(Bin([]byte("ab")), Idx(0), Idx(5), Op(OpSlice))
	m := newTestMachine(script)
	_, err := m.Execute(bgCtx())
	require.Error(t, err)
	var ce Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrShape, ce.Code)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	plaintext, _ := cryptoadapt.Decode("455a8ecfd265c6e4ce63e590679a6e68b1e34b3112cdfe3e655fa47c545ae3f4f13bc066d289ec1d59eda208578d0040ad69d37411ae044583ca2c844ebcc099", cryptoadapt.Hex)
	key, _ := cryptoadapt.Decode("7e874bde68d5a1f99dc0675c22f4b94705b259b7e6033dc31e598b1f6cc330f7", cryptoadapt.Hex)
	nonce, _ := cryptoadapt.Decode("a65af86b4856df7f655ff71132af566a736b91e24a11e114", cryptoadapt.Hex)
	ciphertext, _ := cryptoadapt.Decode("64a5fa3599adffef7ca387345760900d1fdb95b74b572b4ac42150f29f11105f7258e5bc135427e9f3c9b1340882de656a4fe7d789e85f9c0b9156ea8bc28692f29d0ba4991fed9daf956d174f75e058", cryptoadapt.Hex)

	encryptScript := NewScript(
		Bin(ciphertext),
		Bin(plaintext), Bin(key), Bin(nonce),
		EncryptionID(cryptoadapt.XSalsa20Poly1305), Op(OpEncrypt),
		Op(OpEqual),
	)
	assert.True(t, onlyBool(t, runStack(t, encryptScript)))

	decryptScript := NewScript(
		Bin(plaintext),
		Bin(ciphertext), Bin(key), Bin(nonce),
		EncryptionID(cryptoadapt.XSalsa20Poly1305), Op(OpDecrypt),
		Op(OpEqual),
	)
	assert.True(t, onlyBool(t, runStack(t, decryptScript)))
}

func TestSignThenVerify(t *testing.T) {
	msg, _ := cryptoadapt.Decode("7ccf1a3dd89255b11007df39110fa0e83b95030bf3b8b9113d3e0117a24770bc0bf4e61f780e949df0924ade33380dd000b42f394b9e7c0d3191d977df99e83f", cryptoadapt.Hex)
	sk, _ := cryptoadapt.Decode("d2acb699a7e41806bdb3d4400a6ace771e5e6e079117fa941255014ea433e7b02eb9136429881b23cfdb02fba18422e2467ba0fa78527cf2d96c0791b2827a10", cryptoadapt.Hex)
	pk, _ := cryptoadapt.Decode("2eb9136429881b23cfdb02fba18422e2467ba0fa78527cf2d96c0791b2827a10", cryptoadapt.Hex)
	wantSig, _ := cryptoadapt.Decode("df087999d4d9d01f97de110daf50dca0f422ebe624d20196820a0a97e49314c366dede0f4a3d869872c4d841910b14460a4c47fbb513f2bf82a7de9fc746a70b", cryptoadapt.Hex)

	signScript := NewScript(
		Bin(wantSig),
		Bin(msg), Bin(sk),
		SigningID(cryptoadapt.Ed25519), Op(OpSign),
		Op(OpEqual),
	)
	assert.True(t, onlyBool(t, runStack(t, signScript)))

	verifyScript := NewScript(
		Bin(wantSig), Bin(pk), Bin(msg),
		SigningID(cryptoadapt.Ed25519), Op(OpVerify),
	)
	assert.True(t, onlyBool(t, runStack(t, verifyScript)))

	tampered := append([]byte(nil), wantSig...)
	tampered[0] ^= 0xff
	tamperedVerify := NewScript(
		Bin(tampered), Bin(pk), Bin(msg),
		SigningID(cryptoadapt.Ed25519), Op(OpVerify),
	)
	assert.False(t, onlyBool(t, runStack(t, tamperedVerify)))
}

func TestVerifyConsultsSigCache(t *testing.T) {
	cache, err := cryptoadapt.NewSigCache("")
	require.NoError(t, err)
	defer cache.Close()

	msg := []byte("cached message")
	pk := []byte("not-a-real-pubkey-but-cached")
	sig := []byte("not-a-real-sig-but-cached")
	cache.Add(msg, pk, sig)

	script := NewScript(
		Bin(sig), Bin(pk), Bin(msg),
		SigningID(cryptoadapt.Ed25519), Op(OpVerify),
	)
	m := NewMachine(script, testBackend, WithSigCache(cache))
	stack, err := m.Execute(bgCtx())
	require.NoError(t, err)
	assert.True(t, onlyBool(t, stack))
}

func TestDupAndPop(t *testing.T) {
	stack := runStack(t, NewScript(Idx(7), Op(OpDup), Op(OpPop)))
	require.Len(t, stack, 1)
	assert.Equal(t, int64(7), stack[0].Index)
}

func TestOrderingLessThan(t *testing.T) {
	assert.True(t, onlyBool(t, runStack(t, NewScript(Idx(1), Idx(2), Op(OpLessThan)))))
	assert.False(t, onlyBool(t, runStack(t, NewScript(Idx(2), Idx(1), Op(OpLessThan)))))
}

func TestVersionRequirement(t *testing.T) {
	req, err := ParseVersionRequirement(">=1.0.0 <2.0.0")
	require.NoError(t, err)

	script := NewScript(Str("1.5.0"), Op(OpVersion))
	m := NewMachine(script, testBackend, WithVersionRequirement(req))
	stack, err := m.Execute(bgCtx())
	require.NoError(t, err)
	assert.True(t, onlyBool(t, stack))

	script2 := NewScript(Str("2.5.0"), Op(OpVersion))
	m2 := NewMachine(script2, testBackend, WithVersionRequirement(req))
	stack2, err := m2.Execute(bgCtx())
	require.NoError(t, err)
	assert.False(t, onlyBool(t, stack2))
}
