// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccmd

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// DecodeHash decodes a block hash or transaction id given in the usual
// byte-reversed display order.  The string must be exactly
// chainhash.MaxHashStringSize hex characters; unlike
// chainhash.NewHashFromStr, short strings are not zero padded.
func DecodeHash(s string) (*chainhash.Hash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != chainhash.HashSize {
		return nil, fmt.Errorf("hash is %d bytes, want %d", len(b),
			chainhash.HashSize)
	}

	return chainhash.NewHashFromStr(s)
}

// ParseRawParams parses the parameter list of a raw call.  A nil params
// yields an empty list; otherwise params must hold a JSON array, whose
// elements are returned in order with their original encoding.
func ParseRawParams(params *string) ([]json.RawMessage, error) {
	if params == nil {
		return []json.RawMessage{}, nil
	}

	b := bytes.TrimSpace([]byte(*params))
	if len(b) == 0 || b[0] != '[' {
		return nil, errors.New("params must be a JSON array")
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
