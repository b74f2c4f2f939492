// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccmd

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Dispatch invokes the single node call described by cmd and returns its
// result.  Argument decoding happens before anything is sent, so an Error of
// kind ErrInput or ErrUsage means the node was never contacted.  Failures
// from the client are returned as ErrRemote.  Nothing is retried.
func Dispatch(c Client, cmd Command) (interface{}, error) {
	log.Debugf("Dispatching %s (%s)", cmd.Name(), cmd.Method())
	log.Tracef("Command: %v", newLogClosure(func() string {
		return spew.Sdump(cmd)
	}))

	result, err := cmd.invoke(c)
	if err != nil {
		var e Error
		if errors.As(err, &e) {
			return nil, err
		}
		str := fmt.Sprintf("%s call failed", cmd.Method())
		return nil, makeError(ErrRemote, str, err)
	}

	log.Tracef("Result: %v", newLogClosure(func() string {
		return spew.Sdump(result)
	}))
	return result, nil
}
