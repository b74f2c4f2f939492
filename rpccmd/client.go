// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccmd

import (
	"encoding/json"

	"github.com/btcsuite/bsvrpc/bsvjson"
	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Client is the set of node calls a Command can be dispatched to.  It is
// implemented by nodeclient.Client.
type Client interface {
	GetBlockChainInfo() (*btcjson.GetBlockChainInfoResult, error)
	GetBestBlockHash() (*chainhash.Hash, error)
	GetBlockCount() (int64, error)
	GetDifficulty() (float64, error)
	GetNetworkInfo() (*btcjson.GetNetworkInfoResult, error)
	GetPeerInfo() ([]bsvjson.GetPeerInfoResult, error)
	GetMiningInfo() (*bsvjson.GetMiningInfoResult, error)
	GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
	GetBlockHex(blockHash *chainhash.Hash) (string, error)
	GetBlockVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error)
	GetRawTransactionHex(txHash *chainhash.Hash) (string, error)
	GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
	GetTxOut(txHash *chainhash.Hash, index uint32, mempool bool) (*btcjson.GetTxOutResult, error)
	GetMempoolInfo() (*btcjson.GetMempoolInfoResult, error)
	GetConnectionCount() (int64, error)
	RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
}
