// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/dropmint/dropmintd/ledger"
)

func runAddRecords(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := getKey(m)
	if nil != err {
		return err
	}

	configuration, err := parseHandle(c.String("ledger"), "ledger")
	if nil != err {
		return err
	}

	records := []ledger.TemplateRecord{}
	for _, s := range c.StringSlice("record") {
		record, err := parseRecord(s)
		if nil != err {
			return err
		}
		records = append(records, record)
	}
	if 0 == len(records) {
		return fmt.Errorf("missing records, use the --record option")
	}

	client, err := getClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AppendRecords(configuration, uint32(c.Uint("start")), records, key)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
