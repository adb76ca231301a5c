// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cclang

import "github.com/fxamacker/cbor/v2"

// MarshalCBOR implements §6.3: a script serializes as a CBOR text
// string (major type 3) with the same content as the JSON envelope.
func (s Script) MarshalCBOR() ([]byte, error) {
	text, err := s.Text()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(text)
}

// UnmarshalCBOR implements §6.3: a CBOR text string is tokenized into a
// Script.
func (s *Script) UnmarshalCBOR(data []byte) error {
	var text string
	if err := cbor.Unmarshal(data, &text); err != nil {
		return scriptError(ErrSerialization, err.Error())
	}
	parsed, err := ParseScript(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
