// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package rpccmd turns bsvrpc commands into node calls and prints the results.

Each supported call is a Command type carrying its own typed arguments.
Dispatch decodes any hash arguments, makes exactly one call through a Client
and hands back the result, which WriteResult serializes as indented JSON:

	cmd := rpccmd.GetBlockCmd{Hash: hash, Verbosity: 1}
	result, err := rpccmd.Dispatch(client, cmd)
	if err != nil {
		return err
	}
	return rpccmd.WriteResult(os.Stdout, result)

Errors

All failures are of type Error.  The Kind field tells whether the command
line was malformed (ErrUsage), an argument could not be decoded (ErrInput),
the node call failed (ErrRemote) or the result could not be written
(ErrOutput).  ErrUsage and ErrInput are reported before any call is made.
*/
package rpccmd
