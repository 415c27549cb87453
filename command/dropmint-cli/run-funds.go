// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/dropmint/dropmintd/account"
)

// the owner flag defaults to the signing account
func ownerFromFlags(c *cli.Context, m *metadata) (account.Account, error) {
	if "" != c.String("owner") {
		return parseAccount(c.String("owner"), "owner")
	}
	key, err := getKey(m)
	if nil != err {
		return account.Account{}, err
	}
	return key.Account(), nil
}

func runDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := ownerFromFlags(c, m)
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")
	if 0 == amount {
		return fmt.Errorf("missing amount")
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Deposit(owner, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runCreateHolding(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := ownerFromFlags(c, m)
	if nil != err {
		return err
	}

	asset, err := parseHandle(c.String("asset"), "asset")
	if nil != err {
		return err
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateHolding(owner, asset, c.Uint64("balance"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := ownerFromFlags(c, m)
	if nil != err {
		return err
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
