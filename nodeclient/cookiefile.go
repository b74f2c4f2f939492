// Copyright (c) 2017 The Namecoin developers
// Copyright (c) 2019 The btcsuite developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nodeclient

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// readCookieFile returns the user and password stored in the node's cookie
// file as "user:password".
func readCookieFile(path string) (username, password string, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return
	}

	s := strings.TrimSpace(string(b))
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		err = errors.New("malformed cookie file")
		return
	}

	username, password = parts[0], parts[1]
	return
}

// getAuth returns the basic auth credentials for the next request.  The cookie
// file is read again each time so a node restart that rotates it is picked up.
// ok is false when the request should be sent without credentials.
func (c *connConfig) getAuth() (username, password string, ok bool, err error) {
	if c.CookiePath != "" {
		username, password, err = readCookieFile(c.CookiePath)
		if err != nil {
			return "", "", false, fmt.Errorf("unable to read cookie "+
				"file: %w", err)
		}
		return username, password, true, nil
	}

	return c.User, c.Pass, c.HasAuth, nil
}
