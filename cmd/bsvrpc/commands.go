// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/btcsuite/bsvrpc/rpccmd"
)

// commandBuilder is implemented by the option struct of every subcommand.  It
// turns the parsed options into the command to dispatch.
type commandBuilder interface {
	build(stdin io.Reader) (rpccmd.Command, error)
}

// subcommand describes one entry of the command table.
type subcommand struct {
	name       string
	short      string
	long       string
	newBuilder func() commandBuilder
}

// subcommands is the table of supported subcommands in the order they are
// listed by --help.
var subcommands = []subcommand{
	{
		name:  "get-blockchain-info",
		short: "Get blockchain info",
		long: "Returns an object containing various state info regarding " +
			"blockchain processing.",
		newBuilder: fixed(rpccmd.GetBlockchainInfoCmd{}),
	},
	{
		name:       "get-best-block-hash",
		short:      "Get best block hash",
		long:       "Returns the hash of the best (tip) block in the longest chain.",
		newBuilder: fixed(rpccmd.GetBestBlockHashCmd{}),
	},
	{
		name:       "get-block-count",
		short:      "Get block count",
		long:       "Returns the number of blocks in the longest chain.",
		newBuilder: fixed(rpccmd.GetBlockCountCmd{}),
	},
	{
		name:  "get-difficulty",
		short: "Get difficulty",
		long: "Returns the proof-of-work difficulty as a multiple of the " +
			"minimum difficulty.",
		newBuilder: fixed(rpccmd.GetDifficultyCmd{}),
	},
	{
		name:  "get-network-info",
		short: "Get network info",
		long: "Returns an object containing various state info regarding " +
			"P2P networking.",
		newBuilder: fixed(rpccmd.GetNetworkInfoCmd{}),
	},
	{
		name:  "get-peer-info",
		short: "Get peer info",
		long: "Returns data about each connected network peer as an array " +
			"of objects.",
		newBuilder: fixed(rpccmd.GetPeerInfoCmd{}),
	},
	{
		name:  "get-mining-info",
		short: "Get mining info",
		long: "Returns an object containing mining-related " +
			"information.",
		newBuilder: fixed(rpccmd.GetMiningInfoCmd{}),
	},
	{
		name:  "get-block-hash",
		short: "Get block hash by height",
		long: "Returns the hash of the block at the given height in the " +
			"best chain.",
		newBuilder: func() commandBuilder { return &getBlockHashCmd{} },
	},
	{
		name:  "get-block",
		short: "Get block by hash",
		long: "Returns the block with the given hash.  Verbosity 0 " +
			"returns the serialized block as hex, any other value " +
			"returns the decoded block.",
		newBuilder: func() commandBuilder { return &getBlockCmd{} },
	},
	{
		name:  "get-raw-transaction",
		short: "Get raw transaction",
		long: "Returns the transaction with the given id as hex, or " +
			"decoded when --verbose is given.",
		newBuilder: func() commandBuilder { return &getRawTransactionCmd{} },
	},
	{
		name:  "get-tx-out",
		short: "Get transaction output",
		long: "Returns details about an unspent transaction output, or " +
			"null when it is spent or unknown.",
		newBuilder: func() commandBuilder { return &getTxOutCmd{} },
	},
	{
		name:  "get-mempool-info",
		short: "Get mempool info",
		long: "Returns details on the active state of the transaction " +
			"memory pool.",
		newBuilder: fixed(rpccmd.GetMempoolInfoCmd{}),
	},
	{
		name:       "get-connection-count",
		short:      "Get connection count",
		long:       "Returns the number of connections to other nodes.",
		newBuilder: fixed(rpccmd.GetConnectionCountCmd{}),
	},
	{
		name:  "raw",
		short: "Call any RPC method",
		long: "Calls the named method.  The optional params argument is a " +
			"JSON array of positional parameters; use - to read it " +
			"from the first line of stdin.",
		newBuilder: func() commandBuilder { return &rawCmd{} },
	},
}

// noArgsCmd is the option struct of subcommands that take no arguments.
type noArgsCmd struct {
	cmd rpccmd.Command
}

func (c *noArgsCmd) build(io.Reader) (rpccmd.Command, error) {
	return c.cmd, nil
}

// fixed returns a builder constructor that always produces cmd.
func fixed(cmd rpccmd.Command) func() commandBuilder {
	return func() commandBuilder {
		return &noArgsCmd{cmd: cmd}
	}
}

// getBlockHashCmd defines the options for the get-block-hash subcommand.
type getBlockHashCmd struct {
	Args struct {
		Height uint64 `positional-arg-name:"height"`
	} `positional-args:"yes" required:"yes"`
}

func (c *getBlockHashCmd) build(io.Reader) (rpccmd.Command, error) {
	return rpccmd.GetBlockHashCmd{Height: c.Args.Height}, nil
}

// getBlockCmd defines the options for the get-block subcommand.
type getBlockCmd struct {
	Verbosity uint8 `short:"v" long:"verbosity" default:"1" description:"0 for hex, 1 or more for the decoded block"`
	Args      struct {
		Hash string `positional-arg-name:"hash"`
	} `positional-args:"yes" required:"yes"`
}

func (c *getBlockCmd) build(io.Reader) (rpccmd.Command, error) {
	return rpccmd.GetBlockCmd{
		Hash:      c.Args.Hash,
		Verbosity: c.Verbosity,
	}, nil
}

// getRawTransactionCmd defines the options for the get-raw-transaction
// subcommand.
type getRawTransactionCmd struct {
	Verbose bool `short:"v" long:"verbose" description:"Return the decoded transaction instead of hex"`
	Args    struct {
		TxID string `positional-arg-name:"txid"`
	} `positional-args:"yes" required:"yes"`
}

func (c *getRawTransactionCmd) build(io.Reader) (rpccmd.Command, error) {
	return rpccmd.GetRawTransactionCmd{
		TxID:    c.Args.TxID,
		Verbose: c.Verbose,
	}, nil
}

// getTxOutCmd defines the options for the get-tx-out subcommand.
type getTxOutCmd struct {
	IncludeMempool bool `short:"i" long:"include-mempool" description:"Also consider outputs of unconfirmed transactions"`
	Args           struct {
		TxID string `positional-arg-name:"txid"`
		Vout uint32 `positional-arg-name:"vout"`
	} `positional-args:"yes" required:"yes"`
}

func (c *getTxOutCmd) build(io.Reader) (rpccmd.Command, error) {
	return rpccmd.GetTxOutCmd{
		TxID:           c.Args.TxID,
		Vout:           c.Args.Vout,
		IncludeMempool: c.IncludeMempool,
	}, nil
}

// rawCmd defines the options for the raw subcommand.
type rawCmd struct {
	Args struct {
		Method string  `positional-arg-name:"method" required:"yes"`
		Params *string `positional-arg-name:"params"`
	} `positional-args:"yes"`
}

// build returns the raw call.  Since some parameters, such as a serialized
// block, can be too large for the operating system to allow as a normal
// command line argument, a params argument of "-" is read from the first
// line of stdin.
func (c *rawCmd) build(stdin io.Reader) (rpccmd.Command, error) {
	params := c.Args.Params
	if params != nil && *params == "-" {
		param, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, rpccmd.InputError("failed to read params "+
				"from stdin", err)
		}
		if err == io.EOF && len(param) == 0 {
			return nil, rpccmd.InputError("no params provided on "+
				"stdin", nil)
		}
		param = strings.TrimRight(param, "\r\n")
		params = &param
	}

	return rpccmd.RawCmd{RPCMethod: c.Args.Method, Params: params}, nil
}
