// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cclang

import (
	"context"
	"errors"

	"github.com/blang/semver/v4"
	"go.uber.org/zap"

	"github.com/cclang-run/cclang/cryptoadapt"
	"github.com/cclang-run/cclang/ioengine"
)

// Machine is the stack virtual machine that interprets a Script: it
// holds the value stack, the return-frame stack, the instruction
// pointer, and the script-wide version requirement, and drives
// execution against a pluggable I/O backend.
//
// A Machine is created from a Script, stepped until the instruction
// pointer exits the script, then inspected for its final stack. It
// carries no state across executions.
type Machine struct {
	script  Script
	backend ioengine.Backend
	logger  *zap.Logger
	sigCache *cryptoadapt.SigCache

	versionReq semver.Range

	ip      int
	vstack  valueStack
	rstack  returnStack
}

// MachineOption configures optional Machine behavior at construction
// time, in the same functional-options spirit as the teacher's
// configuration composition.
type MachineOption func(*Machine)

// WithVersionRequirement supplies the semver range the VERSION opcode
// checks scripts against. Without this option, or with a nil req, VERSION
// always matches (an always-satisfied requirement).
func WithVersionRequirement(req semver.Range) MachineOption {
	return func(m *Machine) {
		if req != nil {
			m.versionReq = req
		}
	}
}

// WithLogger attaches structured logging of execution failures. A nil
// logger leaves the default no-op logger in place.
func WithLogger(l *zap.Logger) MachineOption {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSigCache attaches a signature-verification cache consulted and
// populated by the VERIFY opcode.
func WithSigCache(c *cryptoadapt.SigCache) MachineOption {
	return func(m *Machine) { m.sigCache = c }
}

// NewMachine constructs a Machine over script, dispatching I/O opcodes
// to backend. Passing ioengine.NullBackend{} is appropriate for scripts
// that never touch I/O.
func NewMachine(script Script, backend ioengine.Backend, opts ...MachineOption) *Machine {
	m := &Machine{
		script:     script,
		backend:    backend,
		logger:     zap.NewNop(),
		versionReq: func(semver.Version) bool { return true },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Stack returns a snapshot of the current value stack, bottom to top.
func (m *Machine) Stack() []Value {
	return m.vstack.snapshot()
}

// done reports whether the instruction pointer has exited the script.
func (m *Machine) done() bool {
	return m.ip >= m.script.Len()
}

// Step executes the single instruction at the current instruction
// pointer, advancing it (or jumping, for IF/ELSE/FI). It returns
// done=true once the pointer has exited the script.
func (m *Machine) Step(ctx context.Context) (done bool, err error) {
	if m.done() {
		return true, nil
	}

	v := m.script.At(m.ip)
	if !v.IsOpcode() {
		m.vstack.push(v)
		m.ip++
		return m.done(), nil
	}

	if err := m.executeOpcode(ctx, v.Opcode); err != nil {
		fields := []zap.Field{
			zap.String("opcode", v.Opcode.String()),
			zap.Int("ip", m.ip),
		}
		var ce Error
		if errors.As(err, &ce) {
			fields = append(fields, zap.Stringer("kind", ce.Code))
		}
		m.logger.Warn("cclang: instruction failed", fields...)
		return true, err
	}
	switch v.Opcode {
	case OpIf, OpElse, OpFi:
		// These set the instruction pointer themselves.
	default:
		m.ip++
	}
	return m.done(), nil
}

// Execute steps the Machine to completion, returning the final value
// stack. On failure it returns the partial stack alongside the error so
// a caller can inspect how far execution got, per §7's propagation
// rules.
func (m *Machine) Execute(ctx context.Context) ([]Value, error) {
	for {
		done, err := m.Step(ctx)
		if err != nil {
			return m.vstack.snapshot(), err
		}
		if done {
			return m.vstack.snapshot(), nil
		}
	}
}
