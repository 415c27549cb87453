// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
)

type metadata struct {
	connect string
	key     string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "dropmint-cli"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2230",
			Usage: " dropmintd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "key, k",
			Value: "",
			Usage: " base58 private `KEY` used to sign requests",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate key pair, printed to stdout",
			Action: runGenerate,
		},
		{
			Name:      "create-ledger",
			Usage:     "create a sale configuration on the node",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "identifier, i",
					Value: "",
					Usage: "*six character sale `IDENTIFIER`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: "*item `SYMBOL`",
				},
				cli.UintFlag{
					Name:  "royalty, r",
					Value: 0,
					Usage: " royalty in `BASIS-POINTS`",
				},
				cli.UintFlag{
					Name:  "capacity, n",
					Value: 0,
					Usage: "*declared template `CAPACITY`",
				},
				cli.Uint64Flag{
					Name:  "max-supply, m",
					Value: 0,
					Usage: " maximum print supply per item `NUMBER`",
				},
				cli.BoolFlag{
					Name:  "mutable",
					Usage: " items remain mutable after issue",
				},
				cli.BoolFlag{
					Name:  "retain-authority",
					Usage: " node keeps item update authority",
				},
				cli.StringSliceFlag{
					Name:  "creator",
					Usage: " creator as `ACCOUNT:SHARE`, repeat up to three times",
				},
			},
			Action: runCreateLedger,
		},
		{
			Name:      "add-records",
			Usage:     "append template records to a configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "ledger, l",
					Value: "",
					Usage: "*configuration `HANDLE`",
				},
				cli.UintFlag{
					Name:  "start, s",
					Value: 0,
					Usage: " starting record `INDEX`",
				},
				cli.StringSliceFlag{
					Name:  "record, r",
					Usage: "*record as `NAME,URI`, repeatable",
				},
			},
			Action: runAddRecords,
		},
		{
			Name:      "create-claim-ledger",
			Usage:     "open a sale against a configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "configuration, C",
					Value: "",
					Usage: "*configuration `HANDLE`",
				},
				cli.StringFlag{
					Name:  "identifier, i",
					Value: "",
					Usage: "*six character sale `IDENTIFIER`",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: "*item `PRICE`",
				},
				cli.Uint64Flag{
					Name:  "total, t",
					Value: 0,
					Usage: "*total items available `NUMBER`",
				},
				cli.Int64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " public availability `TIMESTAMP` in unix seconds, omit for operator only",
				},
				cli.StringFlag{
					Name:  "treasury, T",
					Value: "",
					Usage: "*treasury `ACCOUNT` receiving payments",
				},
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: " payment asset `HANDLE`, omit for native payment",
				},
			},
			Action: runCreateClaimLedger,
		},
		{
			Name:      "claim",
			Usage:     "redeem one item against payment",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "claim-ledger, l",
					Value: "",
					Usage: "*claim ledger `HANDLE`",
				},
				cli.StringFlag{
					Name:  "holding, H",
					Value: "",
					Usage: " asset holding `HANDLE` to pay from, must be owned by the signing account",
				},
				cli.StringFlag{
					Name:  "update-authority, u",
					Value: "",
					Usage: " item update authority `ACCOUNT`, default is the signing account",
				},
			},
			Action: runClaim,
		},
		{
			Name:      "deposit",
			Usage:     "add native funds to an account (local networks)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " `ACCOUNT` to credit, default is the signing account",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*`AMOUNT` to credit",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "create-holding",
			Usage:     "create an asset holding for an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " `ACCOUNT` owning the holding, default is the signing account",
				},
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `HANDLE`",
				},
				cli.Uint64Flag{
					Name:  "balance, b",
					Value: 0,
					Usage: " initial `BALANCE`",
				},
			},
			Action: runCreateHolding,
		},
		{
			Name:      "balance",
			Usage:     "display native balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " `ACCOUNT` to query, default is the signing account",
				},
			},
			Action: runBalance,
		},
		{
			Name:   "info",
			Usage:  "display dropmintd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display dropmint-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				key:     c.GlobalString("key"),
				verbose: c.GlobalBool("verbose"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
