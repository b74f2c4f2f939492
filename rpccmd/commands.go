// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccmd

import (
	"math"
	"strconv"
)

// Command is one node call together with its arguments.  The set of commands
// is closed: every command type is declared in this package and each one
// knows how to invoke itself against a Client.
type Command interface {
	// Name returns the command line name of the command.
	Name() string

	// Method returns the JSON-RPC method the command calls.
	Method() string

	invoke(c Client) (interface{}, error)
}

// GetBlockchainInfoCmd requests the state of the node's best chain.
type GetBlockchainInfoCmd struct{}

func (GetBlockchainInfoCmd) Name() string   { return "get-blockchain-info" }
func (GetBlockchainInfoCmd) Method() string { return "getblockchaininfo" }

func (GetBlockchainInfoCmd) invoke(c Client) (interface{}, error) {
	return c.GetBlockChainInfo()
}

// GetBestBlockHashCmd requests the hash of the chain tip.
type GetBestBlockHashCmd struct{}

func (GetBestBlockHashCmd) Name() string   { return "get-best-block-hash" }
func (GetBestBlockHashCmd) Method() string { return "getbestblockhash" }

func (GetBestBlockHashCmd) invoke(c Client) (interface{}, error) {
	hash, err := c.GetBestBlockHash()
	if err != nil {
		return nil, err
	}
	return hash.String(), nil
}

// GetBlockCountCmd requests the height of the chain tip.
type GetBlockCountCmd struct{}

func (GetBlockCountCmd) Name() string   { return "get-block-count" }
func (GetBlockCountCmd) Method() string { return "getblockcount" }

func (GetBlockCountCmd) invoke(c Client) (interface{}, error) {
	return c.GetBlockCount()
}

// GetDifficultyCmd requests the proof-of-work difficulty of the tip.
type GetDifficultyCmd struct{}

func (GetDifficultyCmd) Name() string   { return "get-difficulty" }
func (GetDifficultyCmd) Method() string { return "getdifficulty" }

func (GetDifficultyCmd) invoke(c Client) (interface{}, error) {
	return c.GetDifficulty()
}

// GetNetworkInfoCmd requests the node's P2P networking state.
type GetNetworkInfoCmd struct{}

func (GetNetworkInfoCmd) Name() string   { return "get-network-info" }
func (GetNetworkInfoCmd) Method() string { return "getnetworkinfo" }

func (GetNetworkInfoCmd) invoke(c Client) (interface{}, error) {
	return c.GetNetworkInfo()
}

// GetPeerInfoCmd requests data about each connected peer.
type GetPeerInfoCmd struct{}

func (GetPeerInfoCmd) Name() string   { return "get-peer-info" }
func (GetPeerInfoCmd) Method() string { return "getpeerinfo" }

func (GetPeerInfoCmd) invoke(c Client) (interface{}, error) {
	return c.GetPeerInfo()
}

// GetMiningInfoCmd requests mining related state.
type GetMiningInfoCmd struct{}

func (GetMiningInfoCmd) Name() string   { return "get-mining-info" }
func (GetMiningInfoCmd) Method() string { return "getmininginfo" }

func (GetMiningInfoCmd) invoke(c Client) (interface{}, error) {
	return c.GetMiningInfo()
}

// GetBlockHashCmd requests the hash of the best chain block at Height.
type GetBlockHashCmd struct {
	Height uint64
}

func (GetBlockHashCmd) Name() string   { return "get-block-hash" }
func (GetBlockHashCmd) Method() string { return "getblockhash" }

func (cmd GetBlockHashCmd) invoke(c Client) (interface{}, error) {
	if cmd.Height > math.MaxInt64 {
		str := "block height " + strconv.FormatUint(cmd.Height, 10) +
			" is out of range"
		return nil, makeError(ErrInput, str, nil)
	}

	hash, err := c.GetBlockHash(int64(cmd.Height))
	if err != nil {
		return nil, err
	}
	return hash.String(), nil
}

// GetBlockCmd requests the block identified by Hash.  Verbosity 0 returns the
// serialized block as hex.  Any other verbosity returns the decoded block with
// transaction ids only; levels above 1 are treated as 1.
type GetBlockCmd struct {
	Hash      string
	Verbosity uint8
}

func (GetBlockCmd) Name() string   { return "get-block" }
func (GetBlockCmd) Method() string { return "getblock" }

func (cmd GetBlockCmd) invoke(c Client) (interface{}, error) {
	hash, err := DecodeHash(cmd.Hash)
	if err != nil {
		return nil, makeError(ErrInput, "invalid hex in block hash", err)
	}

	if cmd.Verbosity == 0 {
		return c.GetBlockHex(hash)
	}
	if cmd.Verbosity > 1 {
		log.Debugf("Verbosity %d requested, using 1", cmd.Verbosity)
	}
	return c.GetBlockVerbose(hash)
}

// GetRawTransactionCmd requests the transaction identified by TxID, either as
// serialized hex or, when Verbose is set, decoded.
type GetRawTransactionCmd struct {
	TxID    string
	Verbose bool
}

func (GetRawTransactionCmd) Name() string   { return "get-raw-transaction" }
func (GetRawTransactionCmd) Method() string { return "getrawtransaction" }

func (cmd GetRawTransactionCmd) invoke(c Client) (interface{}, error) {
	txHash, err := DecodeHash(cmd.TxID)
	if err != nil {
		return nil, makeError(ErrInput, "invalid hex in transaction id", err)
	}

	if cmd.Verbose {
		return c.GetRawTransactionVerbose(txHash)
	}
	return c.GetRawTransactionHex(txHash)
}

// GetTxOutCmd requests an unspent output.  The result is null when the output
// is spent or does not exist.
type GetTxOutCmd struct {
	TxID           string
	Vout           uint32
	IncludeMempool bool
}

func (GetTxOutCmd) Name() string   { return "get-tx-out" }
func (GetTxOutCmd) Method() string { return "gettxout" }

func (cmd GetTxOutCmd) invoke(c Client) (interface{}, error) {
	txHash, err := DecodeHash(cmd.TxID)
	if err != nil {
		return nil, makeError(ErrInput, "invalid hex in transaction id", err)
	}

	return c.GetTxOut(txHash, cmd.Vout, cmd.IncludeMempool)
}

// GetMempoolInfoCmd requests the size of the memory pool.
type GetMempoolInfoCmd struct{}

func (GetMempoolInfoCmd) Name() string   { return "get-mempool-info" }
func (GetMempoolInfoCmd) Method() string { return "getmempoolinfo" }

func (GetMempoolInfoCmd) invoke(c Client) (interface{}, error) {
	return c.GetMempoolInfo()
}

// GetConnectionCountCmd requests the number of connected peers.
type GetConnectionCountCmd struct{}

func (GetConnectionCountCmd) Name() string   { return "get-connection-count" }
func (GetConnectionCountCmd) Method() string { return "getconnectioncount" }

func (GetConnectionCountCmd) invoke(c Client) (interface{}, error) {
	return c.GetConnectionCount()
}

// RawCmd calls an arbitrary method.  Params, when not nil, is a JSON array
// literal holding the positional parameters.
type RawCmd struct {
	RPCMethod string
	Params    *string
}

func (RawCmd) Name() string       { return "raw" }
func (cmd RawCmd) Method() string { return cmd.RPCMethod }

func (cmd RawCmd) invoke(c Client) (interface{}, error) {
	if cmd.RPCMethod == "" {
		return nil, makeError(ErrUsage, "raw call needs a method name", nil)
	}

	params, err := ParseRawParams(cmd.Params)
	if err != nil {
		return nil, makeError(ErrInput,
			"failed to parse params as JSON array", err)
	}

	return c.RawRequest(cmd.RPCMethod, params)
}
