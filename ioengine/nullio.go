// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ioengine

import "context"

// NullBackend accepts every call and returns empty results. It is the
// canonical backend for scripts that never touch I/O, and for exercising
// non-I/O opcodes in isolation.
type NullBackend struct{}

var _ Backend = NullBackend{}

func (NullBackend) Open(_ context.Context, _ string, _ Mode) (Handle, error) {
	return 0, nil
}

func (NullBackend) Read(_ context.Context, _ Handle, _ int64) (any, error) {
	return []byte{}, nil
}

func (NullBackend) Write(_ context.Context, _ Handle, _ any) error {
	return nil
}

func (NullBackend) Seek(_ context.Context, _ Handle, _ int64, _ Whence) error {
	return nil
}

func (NullBackend) Close(_ context.Context, _ Handle) error {
	return nil
}
