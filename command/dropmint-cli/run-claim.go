// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/dropmint/dropmintd/storagehandle"
)

func runClaim(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := getKey(m)
	if nil != err {
		return err
	}

	claimLedger, err := parseHandle(c.String("claim-ledger"), "claim-ledger")
	if nil != err {
		return err
	}

	var holding *storagehandle.Handle
	if "" != c.String("holding") {
		h, err := parseHandle(c.String("holding"), "holding")
		if nil != err {
			return err
		}
		holding = &h
	}

	updateAuthority := key.Account()
	if "" != c.String("update-authority") {
		updateAuthority, err = parseAccount(c.String("update-authority"), "update-authority")
		if nil != err {
			return err
		}
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Claim(claimLedger, holding, updateAuthority, key)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
