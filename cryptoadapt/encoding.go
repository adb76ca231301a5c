// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cryptoadapt

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
)

// Encode renders b as text under the named codec.
func Encode(b []byte, id Encoding) (string, error) {
	switch id {
	case Hex:
		return hex.EncodeToString(b), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(b), nil
	case Base64Url:
		return base64.URLEncoding.EncodeToString(b), nil
	case Base58Bitcoin:
		return base58.Encode(b), nil
	default:
		return "", fmt.Errorf("cryptoadapt: unsupported encoding id %v", id)
	}
}

// Decode recovers the binary value s was encoded from under the named
// codec. It fails on malformed input, per the codec's own validation.
func Decode(s string, id Encoding) ([]byte, error) {
	switch id {
	case Hex:
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("cryptoadapt: invalid hex text: %w", err)
		}
		return b, nil
	case Base64:
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("cryptoadapt: invalid base64 text: %w", err)
		}
		return b, nil
	case Base64Url:
		b, err := base64.URLEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("cryptoadapt: invalid base64url text: %w", err)
		}
		return b, nil
	case Base58Bitcoin:
		b, err := base58.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("cryptoadapt: invalid base58 text: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("cryptoadapt: unsupported encoding id %v", id)
	}
}
