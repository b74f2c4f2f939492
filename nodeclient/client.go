// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nodeclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/btcsuite/bsvrpc/bsvjson"
	"github.com/btcsuite/bsvrpc/rpcauth"
	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Client is a JSON-RPC connection to a Bitcoin SV node.  It exposes one
// method per supported call plus RawRequest for everything else.  Every call
// is a single HTTP POST.
type Client struct {
	id         atomic.Uint64
	cfg        *connConfig
	httpClient *http.Client
}

// Option changes the connection configuration before the client is created.
type Option func(*connConfig)

// WithCertificates sets the PEM encoded certificate chain used to verify the
// node when connecting over https.
func WithCertificates(certs []byte) Option {
	return func(cfg *connConfig) {
		cfg.Certificates = certs
	}
}

// WithProxy routes the connection through the SOCKS5 proxy at addr.
func WithProxy(addr, user, pass string) Option {
	return func(cfg *connConfig) {
		cfg.Proxy = addr
		cfg.ProxyUser = user
		cfg.ProxyPass = pass
	}
}

// New returns a client for the node at rawURL using the given authentication.
// A URI mode ignores rawURL and connects with the credentials embedded in the
// mode's own URL.
func New(rawURL string, auth rpcauth.Mode, opts ...Option) (*Client, error) {
	if auth.Kind == rpcauth.URI {
		return NewFromURI(auth.URL, opts...)
	}

	cfg, err := newConnConfig(rawURL)
	if err != nil {
		return nil, err
	}

	switch auth.Kind {
	case rpcauth.UserPass:
		cfg.User = auth.User
		cfg.Pass = auth.Password
		cfg.HasAuth = true

	case rpcauth.CookieFile:
		cfg.CookiePath = auth.CookiePath

	case rpcauth.None:
		log.Debugf("No credentials configured for %s", cfg.Host)
	}

	return newClient(cfg, auth, opts)
}

// NewFromURI returns a client for the node at rawURL, authenticating with the
// user and password in the URL's userinfo.  A URL without userinfo sends no
// credentials.
func NewFromURI(rawURL string, opts ...Option) (*Client, error) {
	cfg, u, err := parseConnConfig(rawURL)
	if err != nil {
		return nil, err
	}

	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Pass, _ = u.User.Password()
		cfg.HasAuth = true
	}

	return newClient(cfg, rpcauth.Mode{Kind: rpcauth.URI}, opts)
}

func newClient(cfg *connConfig, auth rpcauth.Mode,
	opts []Option) (*Client, error) {

	for _, opt := range opts {
		opt(cfg)
	}

	httpClient, err := newHTTPClient(cfg)
	if err != nil {
		return nil, err
	}

	log.Debugf("Connecting to %s (tls %v, auth %v)", cfg.Host,
		!cfg.DisableTLS, auth)

	return &Client{cfg: cfg, httpClient: httpClient}, nil
}

// Shutdown releases any idle connections held by the client.
func (c *Client) Shutdown() {
	c.httpClient.CloseIdleConnections()
}

// rawCall issues method with params and unmarshals the result into result.
func (c *Client) rawCall(method string, params []interface{},
	result interface{}) error {

	rawParams := make([]json.RawMessage, 0, len(params))
	for _, param := range params {
		b, err := json.Marshal(param)
		if err != nil {
			return err
		}
		rawParams = append(rawParams, b)
	}

	res, err := c.sendPostRequest(method, rawParams)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(res, result); err != nil {
		return fmt.Errorf("malformed %s response: %w", method, err)
	}
	return nil
}

// getHash calls method and decodes the block hash it answers with.
func (c *Client) getHash(method string, params []interface{}) (*chainhash.Hash, error) {
	var hashStr string
	if err := c.rawCall(method, params, &hashStr); err != nil {
		return nil, err
	}
	return chainhash.NewHashFromStr(hashStr)
}

// GetBlockChainInfo returns information related to the processing state of
// various chain-specific details such as the current difficulty from the tip
// of the main chain.
func (c *Client) GetBlockChainInfo() (*btcjson.GetBlockChainInfoResult, error) {
	var info btcjson.GetBlockChainInfoResult
	if err := c.rawCall("getblockchaininfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetBestBlockHash returns the hash of the best block in the longest block
// chain.
func (c *Client) GetBestBlockHash() (*chainhash.Hash, error) {
	return c.getHash("getbestblockhash", nil)
}

// GetBlockCount returns the number of blocks in the longest block chain.
func (c *Client) GetBlockCount() (int64, error) {
	var count int64
	err := c.rawCall("getblockcount", nil, &count)
	return count, err
}

// GetDifficulty returns the proof-of-work difficulty as a multiple of the
// minimum difficulty.
func (c *Client) GetDifficulty() (float64, error) {
	var difficulty float64
	err := c.rawCall("getdifficulty", nil, &difficulty)
	return difficulty, err
}

// GetNetworkInfo returns data about the current network.
func (c *Client) GetNetworkInfo() (*btcjson.GetNetworkInfoResult, error) {
	var info btcjson.GetNetworkInfoResult
	if err := c.rawCall("getnetworkinfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetPeerInfo returns data about each connected network peer.
func (c *Client) GetPeerInfo() ([]bsvjson.GetPeerInfoResult, error) {
	var peers []bsvjson.GetPeerInfoResult
	if err := c.rawCall("getpeerinfo", nil, &peers); err != nil {
		return nil, err
	}
	return peers, nil
}

// GetMiningInfo returns mining information.
func (c *Client) GetMiningInfo() (*bsvjson.GetMiningInfoResult, error) {
	var info bsvjson.GetMiningInfoResult
	if err := c.rawCall("getmininginfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetBlockHash returns the hash of the block in the best block chain at the
// given height.
func (c *Client) GetBlockHash(blockHeight int64) (*chainhash.Hash, error) {
	return c.getHash("getblockhash", []interface{}{blockHeight})
}

// GetBlockHex returns the serialized block with the given hash as a hex
// string.  The block is not decoded locally, so its size is only bounded by
// what the node is willing to send.
func (c *Client) GetBlockHex(blockHash *chainhash.Hash) (string, error) {
	var blockHex string
	params := []interface{}{blockHash.String(), 0}
	if err := c.rawCall("getblock", params, &blockHex); err != nil {
		return "", err
	}
	return blockHex, nil
}

// GetBlockVerbose returns a data structure from the server with information
// about a block given its hash.  Transactions are listed by id only.
func (c *Client) GetBlockVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error) {
	var block btcjson.GetBlockVerboseResult
	params := []interface{}{blockHash.String(), 1}
	if err := c.rawCall("getblock", params, &block); err != nil {
		return nil, err
	}
	return &block, nil
}

// GetRawTransactionHex returns the serialized transaction with the given hash
// as a hex string.
func (c *Client) GetRawTransactionHex(txHash *chainhash.Hash) (string, error) {
	var txHex string
	params := []interface{}{txHash.String(), 0}
	if err := c.rawCall("getrawtransaction", params, &txHex); err != nil {
		return "", err
	}
	return txHex, nil
}

// GetRawTransactionVerbose returns information about a transaction given its
// hash.
func (c *Client) GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error) {
	var tx btcjson.TxRawResult
	params := []interface{}{txHash.String(), 1}
	if err := c.rawCall("getrawtransaction", params, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// GetTxOut returns the transaction output info if it's unspent and nil, nil
// otherwise.
func (c *Client) GetTxOut(txHash *chainhash.Hash, index uint32, mempool bool) (*btcjson.GetTxOutResult, error) {
	// The node answers null for a spent or unknown output, which leaves
	// txOut nil.
	var txOut *btcjson.GetTxOutResult
	params := []interface{}{txHash.String(), index, mempool}
	if err := c.rawCall("gettxout", params, &txOut); err != nil {
		return nil, err
	}
	return txOut, nil
}

// GetMempoolInfo returns the size of the memory pool in transactions and
// bytes.
func (c *Client) GetMempoolInfo() (*btcjson.GetMempoolInfoResult, error) {
	var info btcjson.GetMempoolInfoResult
	if err := c.rawCall("getmempoolinfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetConnectionCount returns the number of active connections to other peers.
func (c *Client) GetConnectionCount() (int64, error) {
	var count int64
	err := c.rawCall("getconnectioncount", nil, &count)
	return count, err
}

// RawRequest sends method with the already marshalled params and returns the
// undecoded result.  A nil params is sent as an empty array.
func (c *Client) RawRequest(method string, params []json.RawMessage) (json.RawMessage, error) {
	return c.sendPostRequest(method, params)
}
