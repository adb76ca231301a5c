// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cclang

// findMatchingElseFi scans forward from an IF at index ifIdx to locate
// its matching ELSE (if any) and FI, honoring nesting: each intervening
// IF is skipped by recursively finding its own FI, per §4.5. It returns
// the index of the matching FI, and the index of the matching ELSE (or
// -1 if none exists at this nesting level).
func findMatchingElseFi(script Script, ifIdx int) (elseIdx, fiIdx int, err error) {
	elseIdx = -1
	i := ifIdx + 1
	for i < script.Len() {
		v := script.At(i)
		if !v.IsOpcode() {
			i++
			continue
		}
		switch v.Opcode {
		case OpIf:
			_, nestedFi, nestedErr := findMatchingElseFi(script, i)
			if nestedErr != nil {
				return 0, 0, nestedErr
			}
			i = nestedFi + 1
		case OpElse:
			elseIdx = i
			i++
		case OpFi:
			return elseIdx, i, nil
		default:
			i++
		}
	}
	return 0, 0, scriptError(ErrControlFlow, "IF with no matching FI")
}
