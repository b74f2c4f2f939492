// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nodeclient

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// connConfig describes the connection to a single node.
type connConfig struct {
	// Host is the host, port and optional path of the RPC endpoint.
	Host string

	// DisableTLS selects plain http.
	DisableTLS bool

	// User and Pass are sent as basic auth when HasAuth is set.  A URI
	// may carry a user with an empty password, so Pass alone does not say
	// whether credentials exist.
	User    string
	Pass    string
	HasAuth bool

	// CookiePath is read for the credentials on every request when set.
	CookiePath string

	// Certificates holds PEM encoded certificates trusted for https.
	Certificates []byte

	// Proxy is the address of a SOCKS5 proxy to dial through.
	Proxy     string
	ProxyUser string
	ProxyPass string
}

// url returns the address requests are posted to.
func (c *connConfig) url() string {
	scheme := "https"
	if c.DisableTLS {
		scheme = "http"
	}
	return scheme + "://" + c.Host
}

// newConnConfig returns the configuration for the node at rawURL without any
// credentials.
func newConnConfig(rawURL string) (*connConfig, error) {
	cfg, _, err := parseConnConfig(rawURL)
	return cfg, err
}

// parseConnConfig parses rawURL and returns the matching configuration along
// with the parsed URL.  A URL without a scheme is taken to be plain http.  The
// path, if any, is kept as part of the host so calls reach endpoints such as
// /wallet/<name>.
func parseConnConfig(rawURL string) (*connConfig, *url.URL, error) {
	if !strings.Contains(rawURL, "://") {
		rawURL = "http://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		// url.Error repeats the whole URL, credentials included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, nil, fmt.Errorf("invalid node URL: %w", err)
	}

	var disableTLS bool
	switch u.Scheme {
	case "http":
		disableTLS = true
	case "https":
	default:
		return nil, nil, fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}

	if u.Host == "" {
		return nil, nil, errors.New("node URL has no host")
	}

	cfg := &connConfig{
		Host:       u.Host + strings.TrimSuffix(u.Path, "/"),
		DisableTLS: disableTLS,
	}
	return cfg, u, nil
}
