// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nodeclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/go-socks/socks"
)

// newHTTPClient returns a new http client that is configured according to the
// proxy and TLS settings in the associated connection configuration.  The
// environment's proxy settings are not consulted.
func newHTTPClient(cfg *connConfig) (*http.Client, error) {
	transport := &http.Transport{}

	if cfg.Proxy != "" {
		proxy := &socks.Proxy{
			Addr:     cfg.Proxy,
			Username: cfg.ProxyUser,
			Password: cfg.ProxyPass,
		}
		transport.DialContext = func(_ context.Context, network,
			addr string) (net.Conn, error) {

			return proxy.Dial(network, addr)
		}
	}

	if !cfg.DisableTLS {
		tlsConfig := &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
		if len(cfg.Certificates) > 0 {
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(cfg.Certificates) {
				return nil, errors.New("no valid PEM certificates " +
					"in RPC certificate")
			}
			tlsConfig.RootCAs = pool
		}
		transport.TLSClientConfig = tlsConfig
	}

	return &http.Client{Transport: transport}, nil
}

// sendPostRequest posts a single JSON-RPC request for method to the node and
// returns the undecoded result.  The request is attempted exactly once; a
// connection failure is returned to the caller as is.
func (c *Client) sendPostRequest(method string,
	params []json.RawMessage) (json.RawMessage, error) {

	if params == nil {
		params = []json.RawMessage{}
	}
	id := c.id.Add(1)
	marshalledJSON, err := json.Marshal(&btcjson.Request{
		Jsonrpc: btcjson.RpcVersion1,
		Method:  method,
		Params:  params,
		ID:      id,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.cfg.url(),
		bytes.NewReader(marshalledJSON))
	if err != nil {
		return nil, err
	}
	httpReq.Close = true
	httpReq.Header.Set("Content-Type", "application/json")

	// Configure basic access authorization.
	user, pass, ok, err := c.cfg.getAuth()
	if err != nil {
		return nil, err
	}
	if ok {
		httpReq.SetBasicAuth(user, pass)
	}

	log.Tracef("Sending command [%s] with id %d", method, id)

	httpResponse, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}

	respBytes, err := io.ReadAll(httpResponse.Body)
	httpResponse.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("error reading json reply: %v", err)
	}

	// A node that rejects the request before it reaches the RPC layer, such
	// as for bad credentials, answers with a bare status.
	var resp btcjson.Response
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		return nil, fmt.Errorf("status code: %d, response: %q",
			httpResponse.StatusCode, string(respBytes))
	}

	if resp.Error != nil {
		return nil, resp.Error
	}
	if len(resp.Result) == 0 {
		return json.RawMessage("null"), nil
	}
	return resp.Result, nil
}
