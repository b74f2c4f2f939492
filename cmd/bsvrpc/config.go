// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/btcsuite/bsvrpc/rpccmd"
	flags "github.com/jessevdk/go-flags"
)

const (
	appName         = "bsvrpc"
	defaultURL      = "http://localhost:8332"
	defaultLogLevel = "warn"
	showHelpMessage = "Specify -h to show available options"
)

// config defines the global options.  Credentials embedded in the URL take
// precedence over the cookie file, which takes precedence over user and
// password.
type config struct {
	URL         string `short:"u" long:"url" description:"URL of the node's JSON-RPC interface; user:pass@ in the URL overrides the other credential options"`
	User        string `short:"U" long:"user" description:"RPC username"`
	Password    string `short:"p" long:"password" default-mask:"-" description:"RPC password"`
	CookieFile  string `short:"c" long:"cookie-file" description:"Authenticate with the node's .cookie file at this path"`
	RPCCert     string `long:"rpccert" description:"File containing the certificate chain used to verify an https node"`
	Proxy       string `long:"proxy" description:"Connect via SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	ProxyUser   string `long:"proxyuser" description:"Username for proxy server"`
	ProxyPass   string `long:"proxypass" default-mask:"-" description:"Password for proxy server"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}; use <subsystem>=<level>,... to set individual subsystems or show to list them"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
}

// defaultConfig returns the global options with their default values.
func defaultConfig() config {
	return config{
		URL:        defaultURL,
		DebugLevel: defaultLogLevel,
	}
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but the variables can still be expanded via POSIX-style
	// $VARIABLE.
	path = os.ExpandEnv(path)

	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	// Expand initial ~ to the current user's home directory, or ~otheruser
	// to otheruser's home directory.  On Windows, both forward and backward
	// slashes can be used.
	path = path[1:]

	var pathSeparators string
	if runtime.GOOS == "windows" {
		pathSeparators = string(os.PathSeparator) + "/"
	} else {
		pathSeparators = string(os.PathSeparator)
	}

	userName := ""
	if i := strings.IndexAny(path, pathSeparators); i != -1 {
		userName = path[:i]
		path = path[i:]
	}

	homeDir := ""
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if err == nil {
		homeDir = u.HomeDir
	}
	// Fallback to CWD if user lookup fails or user has no home directory.
	if homeDir == "" {
		homeDir = "."
	}

	return filepath.Join(homeDir, path)
}

// newParser returns a parser for cfg with every subcommand registered.  The
// returned map holds the option struct of each subcommand keyed by name.
func newParser(cfg *config) (*flags.Parser, map[string]commandBuilder, error) {
	parser := flags.NewNamedParser(appName, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true

	if _, err := parser.AddGroup("Global Options", "", cfg); err != nil {
		return nil, nil, err
	}

	builders := make(map[string]commandBuilder, len(subcommands))
	for _, sc := range subcommands {
		builder := sc.newBuilder()
		_, err := parser.AddCommand(sc.name, sc.short, sc.long, builder)
		if err != nil {
			return nil, nil, err
		}
		builders[sc.name] = builder
	}
	return parser, builders, nil
}

// parseArgs parses the command line arguments into the global options and the
// command to run.  Data for a raw call's "-" parameter is read from stdin.
//
// A request for help is returned as the *flags.Error of type flags.ErrHelp
// holding the help text.  When --version or --debuglevel=show is given the
// command is nil.  All other failures are of kind rpccmd.ErrUsage or
// rpccmd.ErrInput.
func parseArgs(args []string, stdin io.Reader) (*config, rpccmd.Command, error) {
	cfg := defaultConfig()
	parser, builders, err := newParser(&cfg)
	if err != nil {
		return nil, nil, err
	}

	remaining, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil, err
		}
		return nil, nil, rpccmd.UsageError("invalid arguments", err)
	}

	if cfg.ShowVersion || cfg.DebugLevel == "show" {
		return &cfg, nil, nil
	}

	if parser.Active == nil {
		if len(remaining) > 0 {
			return nil, nil, rpccmd.UsageError("unknown command "+
				remaining[0], nil)
		}
		return nil, nil, rpccmd.UsageError("no command specified", nil)
	}
	if len(remaining) > 0 {
		return nil, nil, rpccmd.UsageError("unexpected argument "+
			remaining[0]+" for "+parser.Active.Name, nil)
	}

	if cfg.CookieFile != "" {
		cfg.CookieFile = cleanAndExpandPath(cfg.CookieFile)
	}
	if cfg.RPCCert != "" {
		cfg.RPCCert = cleanAndExpandPath(cfg.RPCCert)
	}

	cmd, err := builders[parser.Active.Name].build(stdin)
	if err != nil {
		return nil, nil, err
	}
	return &cfg, cmd, nil
}
