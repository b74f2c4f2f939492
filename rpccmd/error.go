// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccmd

import (
	"errors"
	"fmt"
)

// ErrorKind identifies a kind of error.
type ErrorKind int

// These constants are used to identify a specific Error.
const (
	// ErrUsage indicates missing or malformed command line arguments.
	ErrUsage ErrorKind = iota

	// ErrInput indicates an argument that parsed as a command line value but
	// could not be decoded, such as a hash with non-hex characters or raw
	// call parameters that are not a JSON array.
	ErrInput

	// ErrRemote indicates a failure surfaced by the RPC client: the node
	// could not be reached, rejected the credentials, or answered with an
	// error object.
	ErrRemote

	// ErrOutput indicates the result could not be serialized or written.
	ErrOutput

	// numErrorKinds is the maximum error kind number used in tests.
	numErrorKinds
)

// Map of ErrorKind values back to their constant names for pretty printing.
var errorKindStrings = map[ErrorKind]string{
	ErrUsage:  "ErrUsage",
	ErrInput:  "ErrInput",
	ErrRemote: "ErrRemote",
	ErrOutput: "ErrOutput",
}

// String returns the ErrorKind as a human-readable name.
func (e ErrorKind) String() string {
	if s := errorKindStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorKind (%d)", int(e))
}

// Error identifies a failure of one invocation.  The caller can use errors.As
// or IsKind to determine the kind of failure, and Unwrap to reach the
// underlying cause.
type Error struct {
	Kind        ErrorKind // Describes the kind of error
	Description string    // Human readable description of the issue
	Err         error     // Underlying error, may be nil
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap returns the underlying error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string, err error) Error {
	return Error{Kind: kind, Description: desc, Err: err}
}

// UsageError returns an Error of kind ErrUsage.
func UsageError(desc string, err error) Error {
	return makeError(ErrUsage, desc, err)
}

// InputError returns an Error of kind ErrInput.
func InputError(desc string, err error) Error {
	return makeError(ErrInput, desc, err)
}

// RemoteError returns an Error of kind ErrRemote.
func RemoteError(desc string, err error) Error {
	return makeError(ErrRemote, desc, err)
}

// IsKind reports whether any error in err's chain is an Error of the given
// kind.
func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
