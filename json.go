// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cclang

import "encoding/json"

// MarshalJSON implements §6.2: a script serializes as a JSON string
// whose content is the canonical text form.
func (s Script) MarshalJSON() ([]byte, error) {
	text, err := s.Text()
	if err != nil {
		return nil, err
	}
	return json.Marshal(text)
}

// UnmarshalJSON implements §6.2: a JSON string is tokenized into a
// Script.
func (s *Script) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return scriptError(ErrSerialization, err.Error())
	}
	parsed, err := ParseScript(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
