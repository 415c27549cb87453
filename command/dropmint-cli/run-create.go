// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/dropmint/dropmintd/ledger"
)

func runCreateLedger(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := getKey(m)
	if nil != err {
		return err
	}

	identifier := c.String("identifier")
	if "" == identifier {
		return fmt.Errorf("missing identifier")
	}

	symbol := c.String("symbol")
	if "" == symbol {
		return fmt.Errorf("missing symbol")
	}

	capacity := c.Uint("capacity")
	if 0 == capacity {
		return fmt.Errorf("missing capacity")
	}

	creators := []ledger.Creator{}
	for _, s := range c.StringSlice("creator") {
		creator, err := parseCreator(s)
		if nil != err {
			return err
		}
		creators = append(creators, creator)
	}

	configuration := ledger.Configuration{
		Operator:               key.Account(),
		Identifier:             identifier,
		Symbol:                 symbol,
		RoyaltyBasisPoints:     uint16(c.Uint("royalty")),
		Creators:               creators,
		MaxSupplyPerItem:       c.Uint64("max-supply"),
		IsMutable:              c.Bool("mutable"),
		RetainsUpdateAuthority: c.Bool("retain-authority"),
		DeclaredCapacity:       uint32(capacity),
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateLedger(&configuration, key)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
