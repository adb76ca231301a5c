// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cclang

import (
	"context"

	"github.com/cclang-run/cclang/ioengine"
)

var testBackend = ioengine.NullBackend{}

func bgCtx() context.Context {
	return context.Background()
}

func newTestMachine(script Script) *Machine {
	return NewMachine(script, testBackend)
}
