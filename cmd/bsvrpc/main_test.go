// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/btcsuite/bsvrpc/rpccmd"
	"github.com/btcsuite/btcd/btcjson"
	"github.com/stretchr/testify/require"
)

// testNode answers JSON-RPC requests with canned results and records the
// methods it was asked for.
type testNode struct {
	mu      sync.Mutex
	methods []string
	params  [][]json.RawMessage
	hasAuth []bool

	user, pass string
	results    map[string]string
	rpcErrors  map[string]*btcjson.RPCError
}

func (n *testNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Method string            `json:"method"`
		Params []json.RawMessage `json:"params"`
		ID     json.RawMessage   `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, pass, hasAuth := r.BasicAuth()

	n.mu.Lock()
	n.methods = append(n.methods, req.Method)
	n.params = append(n.params, req.Params)
	n.hasAuth = append(n.hasAuth, hasAuth)
	n.mu.Unlock()

	if user != n.user || pass != n.pass {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	result := n.results[req.Method]
	if result == "" {
		result = "null"
	}
	resp := map[string]interface{}{
		"result": json.RawMessage(result),
		"error":  n.rpcErrors[req.Method],
		"id":     req.ID,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (n *testNode) calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.methods...)
}

func newTestNode(t *testing.T) (*testNode, string) {
	t.Helper()

	node := &testNode{
		user:      "alice",
		pass:      "secret",
		results:   make(map[string]string),
		rpcErrors: make(map[string]*btcjson.RPCError),
	}
	srv := httptest.NewServer(node)
	t.Cleanup(srv.Close)
	return node, srv.URL
}

// runArgs runs the program against the node at url authenticating as alice.
func runArgs(url, stdin string, args ...string) (string, error) {
	full := append([]string{"-u", url, "-U", "alice", "-p", "secret"}, args...)

	var stdout bytes.Buffer
	err := run(full, strings.NewReader(stdin), &stdout)
	return stdout.String(), err
}

func TestRunBlockCount(t *testing.T) {
	node, url := newTestNode(t)
	node.results["getblockcount"] = "812345"

	out, err := runArgs(url, "", "get-block-count")
	require.NoError(t, err)
	require.Equal(t, "812345\n", out)
	require.Equal(t, []string{"getblockcount"}, node.calls())
}

func TestRunBestBlockHash(t *testing.T) {
	node, url := newTestNode(t)
	node.results["getbestblockhash"] = `"` + genesisHashStr + `"`

	out, err := runArgs(url, "", "get-best-block-hash")
	require.NoError(t, err)
	require.Equal(t, `"`+genesisHashStr+`"`+"\n", out)
}

func TestRunBlockHex(t *testing.T) {
	node, url := newTestNode(t)
	node.results["getblock"] = `"0100000000"`

	out, err := runArgs(url, "", "get-block", "-v", "0", genesisHashStr)
	require.NoError(t, err)
	require.Equal(t, "\"0100000000\"\n", out)
	require.Equal(t, json.RawMessage(`0`), node.params[0][1])
}

func TestRunRawStdin(t *testing.T) {
	node, url := newTestNode(t)
	node.results["getblockheader"] = `{"height":0,"hash":"` + genesisHashStr + `"}`

	stdin := `["` + genesisHashStr + `", true]` + "\n"
	out, err := runArgs(url, stdin, "raw", "getblockheader", "-")
	require.NoError(t, err)
	require.JSONEq(t, node.results["getblockheader"], out)
	require.True(t, strings.HasSuffix(out, "}\n"))
	require.Equal(t, []json.RawMessage{
		json.RawMessage(`"` + genesisHashStr + `"`),
		json.RawMessage(`true`),
	}, node.params[0])
}

func TestRunCookieFile(t *testing.T) {
	node, url := newTestNode(t)
	node.user, node.pass = "__cookie__", "f00d"
	node.results["getconnectioncount"] = "8"

	cookie := filepath.Join(t.TempDir(), ".cookie")
	require.NoError(t, os.WriteFile(cookie, []byte("__cookie__:f00d"), 0600))

	// The cookie file wins over the user and password.
	out, err := runArgs(url, "", "-c", cookie, "get-connection-count")
	require.NoError(t, err)
	require.Equal(t, "8\n", out)
}

func TestRunRemoteError(t *testing.T) {
	node, url := newTestNode(t)
	node.rpcErrors["getblockhash"] = &btcjson.RPCError{
		Code:    btcjson.ErrRPCOutOfRange,
		Message: "Block height out of range",
	}

	out, err := runArgs(url, "", "get-block-hash", "99999999")
	require.True(t, rpccmd.IsKind(err, rpccmd.ErrRemote), "got %v", err)
	require.Contains(t, err.Error(), "Block height out of range")
	require.Empty(t, out)
	require.Equal(t, []string{"getblockhash"}, node.calls())
}

func TestRunInputErrorSendsNothing(t *testing.T) {
	node, url := newTestNode(t)

	_, err := runArgs(url, "", "get-block", "zz")
	require.True(t, rpccmd.IsKind(err, rpccmd.ErrInput), "got %v", err)

	_, err = runArgs(url, "", "raw", "getinfo", `{"a":1}`)
	require.True(t, rpccmd.IsKind(err, rpccmd.ErrInput), "got %v", err)

	require.Empty(t, node.calls())
}

// TestRunNoCredentials ensures a node that needs no authentication is reached
// when no credentials are configured, and that nothing is sent for them.
func TestRunNoCredentials(t *testing.T) {
	node, url := newTestNode(t)
	node.user, node.pass = "", ""
	node.results["getblockcount"] = "812345"

	var stdout bytes.Buffer
	err := run([]string{"-u", url, "get-block-count"}, nil, &stdout)
	require.NoError(t, err)
	require.Equal(t, "812345\n", stdout.String())
	require.Equal(t, []string{"getblockcount"}, node.calls())
	require.Equal(t, []bool{false}, node.hasAuth)

	// A user without a password is not a credential pair either.
	stdout.Reset()
	err = run([]string{"-u", url, "-U", "alice", "get-block-count"}, nil,
		&stdout)
	require.NoError(t, err)
	require.Equal(t, "812345\n", stdout.String())
}

// TestRunUnreachable ensures a node that refuses the connection fails the run
// at once with nothing written to stdout.
func TestRunUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	url := "http://" + ln.Addr().String()
	require.NoError(t, ln.Close())

	start := time.Now()
	out, err := runArgs(url, "", "get-block-count")
	require.True(t, rpccmd.IsKind(err, rpccmd.ErrRemote), "got %v", err)
	require.Empty(t, out)
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestRunBadURL(t *testing.T) {
	_, err := runArgs("ftp://localhost:8332", "", "get-block-count")
	require.True(t, rpccmd.IsKind(err, rpccmd.ErrRemote), "got %v", err)
}

func TestRunMissingCert(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.cert")
	_, err := runArgs("https://localhost:8332", "", "--rpccert", missing,
		"get-block-count")
	require.True(t, rpccmd.IsKind(err, rpccmd.ErrInput), "got %v", err)
}

func TestRunInvalidDebugLevel(t *testing.T) {
	_, err := runArgs("http://localhost:8332", "", "-d", "loud",
		"get-block-count")
	require.True(t, rpccmd.IsKind(err, rpccmd.ErrUsage), "got %v", err)
}

func TestRunInformational(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run([]string{"--help"}, nil, &stdout))
	require.Contains(t, stdout.String(), "get-block-count")
	require.Contains(t, stdout.String(), "--cookie-file")

	stdout.Reset()
	require.NoError(t, run([]string{"-V"}, nil, &stdout))
	require.True(t, strings.HasPrefix(stdout.String(), "bsvrpc version "))

	stdout.Reset()
	require.NoError(t, run([]string{"-d", "show"}, nil, &stdout))
	require.Equal(t, "Supported subsystems [BRPC NCLI RCMD]\n",
		stdout.String())
}
