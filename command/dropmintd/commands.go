// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
)

const (
	rpcCertificateFilename = "rpc.crt"
	rpcPrivateKeyFilename  = "rpc.key"
)

// setup command handler
//
// commands that run to create certificate files
// these commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                                   (h)      - display this message\n\n")
		fmt.Printf("  version                                (v)      - display the program version\n\n")
		fmt.Printf("  gen-rpc-cert [DIRECTORY [IP...]]       (rpc)    - create private key and certificate in optional directory\n")
		fmt.Printf("                                                    with optional extra IP addresses or host names\n\n")
		fmt.Printf("  start                                  (run)    - just run the program, same as no command\n")
		fmt.Printf("\n")
	}
	return true
}

// get the first argument as an optional directory for a key or
// certificate file
func getFilenameWithDirectory(arguments []string, name string) string {
	directory := "."
	if len(arguments) >= 1 && "" != arguments[0] {
		directory = arguments[0]
	}

	filename, err := filepath.Abs(filepath.Clean(filepath.Join(directory, name)))
	if nil != err {
		fmt.Printf("invalid file name: %q in directory: %q error: %s\n", name, directory, err)
		exitwithstatus.Exit(1)
	}

	info, err := os.Stat(filepath.Dir(filename))
	if nil != err || !info.IsDir() {
		fmt.Printf("directory: %q does not exist\n", directory)
		exitwithstatus.Exit(1)
	}

	return filename
}
