// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cclang

import "github.com/blang/semver/v4"

// ParseVersionRequirement parses a semver range expression (e.g. ">=1.0.0
// <2.0.0") into the predicate the VERSION opcode evaluates scripts
// against, per §6.5. Hosts construct this once from their own
// configuration and pass it to NewMachine via WithVersionRequirement.
func ParseVersionRequirement(rangeExpr string) (semver.Range, error) {
	req, err := semver.ParseRange(rangeExpr)
	if err != nil {
		return nil, scriptError(ErrCrypto, "invalid version requirement: "+err.Error())
	}
	return req, nil
}
