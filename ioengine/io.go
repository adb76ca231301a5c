// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ioengine defines the capability contract a CCLang Machine uses
// to satisfy OPEN/READ/WRITE/SEEK/CLOSE, plus the concrete Null and File
// backends that implement it.
package ioengine

import (
	"context"
	"fmt"
)

// Whence names the reference point a SEEK offset is measured from.
type Whence uint8

const (
	Start Whence = iota
	Cur
	End
)

func (w Whence) String() string {
	switch w {
	case Start:
		return "START"
	case Cur:
		return "CUR"
	case End:
		return "END"
	default:
		return fmt.Sprintf("Whence(%d)", uint8(w))
	}
}

// ParseWhence maps a canonical token to its Whence.
func ParseWhence(tok string) (Whence, bool) {
	switch tok {
	case "START":
		return Start, true
	case "CUR":
		return Cur, true
	case "END":
		return End, true
	default:
		return 0, false
	}
}

// Mode carries the POSIX fopen-style flags a script names when OPENing a
// resource: a base disposition (read/write/append), the "+" read-update
// bit, and the "b" binary bit.
type Mode struct {
	Read   bool
	Write  bool
	Append bool
	Plus   bool
	Binary bool
}

// String renders m in its canonical fopen-style token spelling, e.g.
// "r", "w+", "ab".
func (m Mode) String() string {
	var base byte
	switch {
	case m.Append:
		base = 'a'
	case m.Write:
		base = 'w'
	default:
		base = 'r'
	}
	s := string(base)
	if m.Plus {
		s += "+"
	}
	if m.Binary {
		s += "b"
	}
	return s
}

// ParseMode recognizes the canonical mode tokens: r, r+, w, w+, a, a+,
// each with an optional trailing b.
func ParseMode(tok string) (Mode, bool) {
	if tok == "" {
		return Mode{}, false
	}
	s := tok
	var m Mode
	switch s[0] {
	case 'r':
		m.Read = true
	case 'w':
		m.Write = true
	case 'a':
		m.Append = true
	default:
		return Mode{}, false
	}
	s = s[1:]
	if len(s) > 0 && s[0] == '+' {
		m.Plus = true
		s = s[1:]
	}
	if len(s) > 0 && s[0] == 'b' {
		m.Binary = true
		s = s[1:]
	}
	if s != "" {
		return Mode{}, false
	}
	return m, true
}

// CanWrite reports whether m permits the backend to create or modify the
// underlying resource (per §6.4, w/w+/a/a+ imply create semantics).
func (m Mode) CanWrite() bool {
	return m.Write || m.Append
}

// Handle is an opaque, backend-assigned cookie identifying an open
// resource. It carries no behavior of its own; the core never
// introspects it beyond equality.
type Handle int64

// Backend is the host-supplied capability a Machine dispatches I/O
// opcodes to. Each method corresponds to one opcode's operation; Value is
// deliberately untyped here (any) because the core package owns the
// actual tagged Value type and ioengine must not import it back.
type Backend interface {
	// Open creates or opens the resource named identifier under mode and
	// returns a Handle for it.
	Open(ctx context.Context, identifier string, mode Mode) (Handle, error)

	// Read pulls up to n bytes (or, if n < 0, to end of resource) from
	// the resource behind h. The returned value is []byte when h's mode
	// is binary, or string when it is text.
	Read(ctx context.Context, h Handle, n int64) (any, error)

	// Write pushes data (a []byte or string, matching h's mode) to the
	// resource behind h.
	Write(ctx context.Context, h Handle, data any) error

	// Seek repositions the resource behind h per whence/offset.
	Seek(ctx context.Context, h Handle, offset int64, whence Whence) error

	// Close releases the resource behind h. Subsequent use of h is
	// undefined.
	Close(ctx context.Context, h Handle) error
}
