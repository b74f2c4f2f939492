// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/bsvrpc/nodeclient"
	"github.com/btcsuite/bsvrpc/rpcauth"
	"github.com/btcsuite/bsvrpc/rpccmd"
	"github.com/btcsuite/bsvrpc/version"
	flags "github.com/jessevdk/go-flags"
)

// clientOptions returns the connection options selected by cfg.
func clientOptions(cfg *config) ([]nodeclient.Option, error) {
	var opts []nodeclient.Option
	if cfg.RPCCert != "" {
		certs, err := os.ReadFile(cfg.RPCCert)
		if err != nil {
			return nil, rpccmd.InputError("failed to read RPC "+
				"certificate", err)
		}
		opts = append(opts, nodeclient.WithCertificates(certs))
	}
	if cfg.Proxy != "" {
		opts = append(opts, nodeclient.WithProxy(cfg.Proxy, cfg.ProxyUser,
			cfg.ProxyPass))
	}
	return opts, nil
}

// run parses args, performs the selected call against the node and writes
// the result to stdout.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, cmd, err := parseArgs(args, stdin)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return nil
		}
		return err
	}

	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "%s version %s\n", appName, version.String())
		return nil
	}
	if cfg.DebugLevel == "show" {
		fmt.Fprintf(stdout, "Supported subsystems %v\n",
			supportedSubsystems())
		return nil
	}
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return rpccmd.UsageError("invalid --debuglevel", err)
	}

	auth := rpcauth.Resolve(rpcauth.Options{
		URL:        cfg.URL,
		User:       cfg.User,
		Password:   cfg.Password,
		CookieFile: cfg.CookieFile,
	})
	log.Debugf("Using %v authentication", auth)

	opts, err := clientOptions(cfg)
	if err != nil {
		return err
	}
	client, err := nodeclient.New(cfg.URL, auth, opts...)
	if err != nil {
		return rpccmd.RemoteError("failed to create RPC client", err)
	}
	defer client.Shutdown()

	result, err := rpccmd.Dispatch(client, cmd)
	if err != nil {
		return err
	}
	return rpccmd.WriteResult(stdout, result)
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if err == nil {
		return nil
	}

	fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
	if rpccmd.IsKind(err, rpccmd.ErrUsage) {
		fmt.Fprintln(os.Stderr, showHelpMessage)
	}
	return err
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
