// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ioengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseModeRoundTrip(t *testing.T) {
	for _, tok := range []string{"r", "r+", "w", "w+", "a", "a+", "rb", "w+b", "a+b"} {
		m, ok := ParseMode(tok)
		assert.True(t, ok, tok)
		assert.Equal(t, tok, m.String(), tok)
	}
}

func TestParseModeRejectsGarbage(t *testing.T) {
	_, ok := ParseMode("x")
	assert.False(t, ok)
	_, ok = ParseMode("")
	assert.False(t, ok)
}

func TestModeCanWrite(t *testing.T) {
	assert.True(t, Mode{Write: true}.CanWrite())
	assert.True(t, Mode{Append: true}.CanWrite())
	assert.False(t, Mode{Read: true}.CanWrite())
}

func TestParseWhence(t *testing.T) {
	for _, tc := range []struct {
		tok string
		w   Whence
	}{
		{"START", Start},
		{"CUR", Cur},
		{"END", End},
	} {
		w, ok := ParseWhence(tc.tok)
		assert.True(t, ok)
		assert.Equal(t, tc.w, w)
		assert.Equal(t, tc.tok, w.String())
	}
}
