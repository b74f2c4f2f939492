// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcauth

import (
	"fmt"
	"strings"
)

// Kind identifies which authentication mechanism a Mode carries.
type Kind uint8

const (
	// None sends no credentials.
	None Kind = iota

	// UserPass authenticates with an explicit username and password.
	UserPass

	// CookieFile authenticates with the user:password pair stored in a
	// cookie file written by the node.
	CookieFile

	// URI authenticates with the credentials embedded in the node URL.
	URI
)

// Map of Kind values back to their names for pretty printing.
var kindStrings = map[Kind]string{
	None:       "none",
	UserPass:   "userpass",
	CookieFile: "cookiefile",
	URI:        "uri",
}

// String returns the Kind as a human-readable name.
func (k Kind) String() string {
	if s := kindStrings[k]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown Kind (%d)", uint8(k))
}

// Options are the connection options given on the command line that take
// part in credential selection.
type Options struct {
	URL        string
	User       string
	Password   string
	CookieFile string
}

// Mode is the authentication selected for one invocation.  Only the fields
// used by Kind are set.
type Mode struct {
	Kind       Kind
	User       string
	Password   string
	CookiePath string
	URL        string
}

// String returns a description of the mode that is safe to log.
func (m Mode) String() string {
	switch m.Kind {
	case UserPass:
		return fmt.Sprintf("%v (user %q)", m.Kind, m.User)
	case CookieFile:
		return fmt.Sprintf("%v (%s)", m.Kind, m.CookiePath)
	}
	return m.Kind.String()
}

// HasEmbeddedCredentials reports whether rawURL carries credentials in its
// authority, that is whether an "@" appears anywhere after the first "://".
//
// The scan is lenient: an "@" in the path or query also counts.
func HasEmbeddedCredentials(rawURL string) bool {
	i := strings.Index(rawURL, "://")
	if i < 0 {
		return false
	}
	return strings.Contains(rawURL[i+len("://"):], "@")
}

// Resolve selects exactly one authentication mode from opts.  Credentials
// embedded in the URL win, then a cookie file, then a complete user and
// password pair.  Anything else resolves to None.
func Resolve(opts Options) Mode {
	switch {
	case HasEmbeddedCredentials(opts.URL):
		return Mode{Kind: URI, URL: opts.URL}

	case opts.CookieFile != "":
		return Mode{Kind: CookieFile, CookiePath: opts.CookieFile}

	case opts.User != "" && opts.Password != "":
		return Mode{Kind: UserPass, User: opts.User, Password: opts.Password}
	}

	return Mode{Kind: None}
}
