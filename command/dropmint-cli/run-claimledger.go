// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/dropmint/dropmintd/ledger"
	"github.com/dropmint/dropmintd/storagehandle"
)

func runCreateClaimLedger(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := getKey(m)
	if nil != err {
		return err
	}

	configuration, err := parseHandle(c.String("configuration"), "configuration")
	if nil != err {
		return err
	}

	identifier := c.String("identifier")
	if "" == identifier {
		return fmt.Errorf("missing identifier")
	}

	treasury, err := parseAccount(c.String("treasury"), "treasury")
	if nil != err {
		return err
	}

	var paymentAsset *storagehandle.Handle
	if "" != c.String("asset") {
		asset, err := parseHandle(c.String("asset"), "asset")
		if nil != err {
			return err
		}
		paymentAsset = &asset
	}

	// absent start flag leaves the sale operator only
	var availabilityStart *int64
	if c.IsSet("start") {
		start := c.Int64("start")
		availabilityStart = &start
	}

	claimLedger := ledger.ClaimLedger{
		Operator:          key.Account(),
		Treasury:          treasury,
		PaymentAsset:      paymentAsset,
		Configuration:     configuration,
		Identifier:        identifier,
		Price:             c.Uint64("price"),
		TotalAvailable:    c.Uint64("total"),
		AvailabilityStart: availabilityStart,
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateClaimLedger(&claimLedger, key)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
