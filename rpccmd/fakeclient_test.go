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

// fakeCall records one call made through fakeClient.
type fakeCall struct {
	method string
	args   []interface{}
}

// fakeClient is a Client that records every call and answers with canned
// values, or with err when it is set.
type fakeClient struct {
	calls []fakeCall
	err   error

	blockCount int64
	difficulty float64
	hash       chainhash.Hash
	raw        json.RawMessage
}

// Ensure fakeClient satisfies the Client interface.
var _ Client = (*fakeClient)(nil)

func (f *fakeClient) record(method string, args ...interface{}) error {
	f.calls = append(f.calls, fakeCall{method: method, args: args})
	return f.err
}

func (f *fakeClient) GetBlockChainInfo() (*btcjson.GetBlockChainInfoResult, error) {
	if err := f.record("GetBlockChainInfo"); err != nil {
		return nil, err
	}
	return &btcjson.GetBlockChainInfoResult{Chain: "main", Blocks: 812345}, nil
}

func (f *fakeClient) GetBestBlockHash() (*chainhash.Hash, error) {
	if err := f.record("GetBestBlockHash"); err != nil {
		return nil, err
	}
	return &f.hash, nil
}

func (f *fakeClient) GetBlockCount() (int64, error) {
	if err := f.record("GetBlockCount"); err != nil {
		return 0, err
	}
	return f.blockCount, nil
}

func (f *fakeClient) GetDifficulty() (float64, error) {
	if err := f.record("GetDifficulty"); err != nil {
		return 0, err
	}
	return f.difficulty, nil
}

func (f *fakeClient) GetNetworkInfo() (*btcjson.GetNetworkInfoResult, error) {
	if err := f.record("GetNetworkInfo"); err != nil {
		return nil, err
	}
	return &btcjson.GetNetworkInfoResult{Connections: 8}, nil
}

func (f *fakeClient) GetPeerInfo() ([]bsvjson.GetPeerInfoResult, error) {
	if err := f.record("GetPeerInfo"); err != nil {
		return nil, err
	}
	return []bsvjson.GetPeerInfoResult{{ID: 1, Addr: "10.0.0.1:8333"}}, nil
}

func (f *fakeClient) GetMiningInfo() (*bsvjson.GetMiningInfoResult, error) {
	if err := f.record("GetMiningInfo"); err != nil {
		return nil, err
	}
	return &bsvjson.GetMiningInfoResult{Blocks: 812345, Chain: "main"}, nil
}

func (f *fakeClient) GetBlockHash(blockHeight int64) (*chainhash.Hash, error) {
	if err := f.record("GetBlockHash", blockHeight); err != nil {
		return nil, err
	}
	return &f.hash, nil
}

func (f *fakeClient) GetBlockHex(blockHash *chainhash.Hash) (string, error) {
	if err := f.record("GetBlockHex", *blockHash); err != nil {
		return "", err
	}
	return "00", nil
}

func (f *fakeClient) GetBlockVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error) {
	if err := f.record("GetBlockVerbose", *blockHash); err != nil {
		return nil, err
	}
	return &btcjson.GetBlockVerboseResult{Hash: blockHash.String()}, nil
}

func (f *fakeClient) GetRawTransactionHex(txHash *chainhash.Hash) (string, error) {
	if err := f.record("GetRawTransactionHex", *txHash); err != nil {
		return "", err
	}
	return "01000000", nil
}

func (f *fakeClient) GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error) {
	if err := f.record("GetRawTransactionVerbose", *txHash); err != nil {
		return nil, err
	}
	return &btcjson.TxRawResult{Txid: txHash.String()}, nil
}

func (f *fakeClient) GetTxOut(txHash *chainhash.Hash, index uint32, mempool bool) (*btcjson.GetTxOutResult, error) {
	if err := f.record("GetTxOut", *txHash, index, mempool); err != nil {
		return nil, err
	}
	return &btcjson.GetTxOutResult{Confirmations: 6}, nil
}

func (f *fakeClient) GetMempoolInfo() (*btcjson.GetMempoolInfoResult, error) {
	if err := f.record("GetMempoolInfo"); err != nil {
		return nil, err
	}
	return &btcjson.GetMempoolInfoResult{Size: 3, Bytes: 750}, nil
}

func (f *fakeClient) GetConnectionCount() (int64, error) {
	if err := f.record("GetConnectionCount"); err != nil {
		return 0, err
	}
	return 8, nil
}

func (f *fakeClient) RawRequest(method string, params []json.RawMessage) (json.RawMessage, error) {
	if err := f.record("RawRequest", method, params); err != nil {
		return nil, err
	}
	return f.raw, nil
}
