// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/dropmint/dropmintd/account"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, privateKey, err := account.NewAccount()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "account: %#v\n", owner)
	}

	printJson(m.w, struct {
		Account    string `json:"account"`
		PrivateKey string `json:"privateKey"`
	}{
		Account:    owner.String(),
		PrivateKey: privateKey.String(),
	})
	return nil
}
