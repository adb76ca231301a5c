// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cclang

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cclang-run/cclang/ioengine"
)

func TestWriteThenCloseLeavesEmptyStack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blah.txt")
	script := NewScript(
		Str(path), ModeVal(mustMode(t, "w")), Op(OpOpen),
		Str("blah"), Op(OpWrite),
		Op(OpClose),
	)
	m := NewMachine(script, ioengine.NewFileBackend())
	stack, err := m.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stack)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "blah", string(data))
}

func TestOpenReadCloseReturnsDataAndDropsHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readme.txt")
	require.NoError(t, os.WriteFile(path, []byte("When in the Course of human events..."), 0o644))

	script := NewScript(
		Str(path), ModeVal(mustMode(t, "r")), Op(OpOpen),
		Idx(128), Op(OpRead),
		Op(OpClose),
	)
	m := NewMachine(script, ioengine.NewFileBackend())
	stack, err := m.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, stack, 1)
	assert.Equal(t, KindText, stack[0].Kind)
	assert.Equal(t, "When in the Course of human events...", stack[0].Text)
}

func TestSeekFromEndThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seek.txt")
	require.NoError(t, os.WriteFile(path, []byte("the end has limitations"), 0o644))

	script := NewScript(
		Str(path), ModeVal(mustMode(t, "r")), Op(OpOpen),
		Idx(-11), WhenceVal(ioengine.End), Op(OpSeek),
		Idx(11), Op(OpRead),
		Op(OpClose),
	)
	m := NewMachine(script, ioengine.NewFileBackend())
	stack, err := m.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, stack, 1)
	assert.Equal(t, "limitations", stack[0].Text)
}

func mustMode(t *testing.T, tok string) ioengine.Mode {
	t.Helper()
	m, ok := ioengine.ParseMode(tok)
	require.True(t, ok)
	return m
}
