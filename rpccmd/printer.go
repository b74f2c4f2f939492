// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccmd

import (
	"encoding/json"
	"io"
)

// WriteResult writes result to w as indented JSON followed by a newline.  The
// result is fully serialized before the single write, so on error nothing has
// been written unless the writer itself failed part way.
func WriteResult(w io.Writer, result interface{}) error {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return makeError(ErrOutput, "failed to serialize result", err)
	}

	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return makeError(ErrOutput, "failed to write result", err)
	}
	return nil
}
