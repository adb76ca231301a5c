// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cclang

import (
	"context"
	"fmt"
)

// execOpen implements §4.6's OPEN: pops Mode then Text identifier,
// pushes the backend's Handle.
func (m *Machine) execOpen(ctx context.Context) error {
	modev, err := m.popKind(KindMode, "Mode")
	if err != nil {
		return err
	}
	identifier, err := m.popText()
	if err != nil {
		return err
	}
	h, err := m.backend.Open(ctx, identifier, modev.Mode)
	if err != nil {
		return scriptError(ErrBackend, err.Error())
	}
	m.vstack.push(HandleVal(h))
	return nil
}

// execRead implements §4.6's READ: pops Index n then Handle h, pushes
// the read data (Binary or Text, per h's mode) then pushes h back.
func (m *Machine) execRead(ctx context.Context) error {
	n, err := m.popIndex()
	if err != nil {
		return err
	}
	hv, err := m.popKind(KindHandle, "Handle")
	if err != nil {
		return err
	}
	data, err := m.backend.Read(ctx, hv.Handle, n)
	if err != nil {
		return scriptError(ErrBackend, err.Error())
	}
	switch d := data.(type) {
	case []byte:
		m.vstack.push(Bin(d))
	case string:
		m.vstack.push(Str(d))
	default:
		return scriptError(ErrBackend, fmt.Sprintf("backend returned unsupported read type %T", data))
	}
	m.vstack.push(hv)
	return nil
}

// execWrite implements §4.6's WRITE: pops Binary-or-Text then Handle h,
// pushes h back.
func (m *Machine) execWrite(ctx context.Context) error {
	data, err := m.vstack.pop()
	if err != nil {
		return err
	}
	hv, err := m.popKind(KindHandle, "Handle")
	if err != nil {
		return err
	}

	var payload any
	switch data.Kind {
	case KindBinary:
		payload = data.Binary
	case KindText:
		payload = data.Text
	default:
		return scriptError(ErrShape, fmt.Sprintf("WRITE expects Binary or Text, got %v", data))
	}

	if err := m.backend.Write(ctx, hv.Handle, payload); err != nil {
		return scriptError(ErrBackend, err.Error())
	}
	m.vstack.push(hv)
	return nil
}

// execSeek implements §4.6's SEEK: pops Whence w, Index offset, then
// Handle h, pushes h back.
func (m *Machine) execSeek(ctx context.Context) error {
	wv, err := m.popKind(KindWhence, "Whence")
	if err != nil {
		return err
	}
	offset, err := m.popIndex()
	if err != nil {
		return err
	}
	hv, err := m.popKind(KindHandle, "Handle")
	if err != nil {
		return err
	}
	if err := m.backend.Seek(ctx, hv.Handle, offset, wv.Whence); err != nil {
		return scriptError(ErrBackend, err.Error())
	}
	m.vstack.push(hv)
	return nil
}

// execClose implements §4.6's CLOSE: pops Handle h, pushes nothing.
func (m *Machine) execClose(ctx context.Context) error {
	hv, err := m.popKind(KindHandle, "Handle")
	if err != nil {
		return err
	}
	if err := m.backend.Close(ctx, hv.Handle); err != nil {
		return scriptError(ErrBackend, err.Error())
	}
	return nil
}

// execIf implements the IF half of §4.5's structured branching.
func (m *Machine) execIf() error {
	cond, err := m.popBool()
	if err != nil {
		return err
	}

	elseIdx, fiIdx, err := findMatchingElseFi(m.script, m.ip)
	if err != nil {
		return err
	}

	switch {
	case cond:
		m.rstack.push(fiIdx + 1)
		m.ip++
	case elseIdx >= 0:
		m.rstack.push(fiIdx + 1)
		m.ip = elseIdx + 1
	default:
		m.ip = fiIdx + 1
	}
	return nil
}

// execElse implements reaching an ELSE after a taken true-branch: pop
// the resume address pushed by the matching IF and jump there.
func (m *Machine) execElse() error {
	resume, err := m.rstack.pop()
	if err != nil {
		return err
	}
	m.ip = resume
	return nil
}

// execFi implements reaching a FI that was entered via a taken branch:
// pop the resume address and jump there (which, for the taken branch,
// is simply the instruction after this FI).
func (m *Machine) execFi() error {
	resume, err := m.rstack.pop()
	if err != nil {
		return err
	}
	m.ip = resume
	return nil
}
