// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/command/dropmint-cli/rpccalls"
	"github.com/dropmint/dropmintd/ledger"
	"github.com/dropmint/dropmintd/storagehandle"
)

// open a connection using the global connect flag
func getClient(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

// decode the global key flag
func getKey(m *metadata) (account.PrivateKey, error) {
	if "" == m.key {
		return nil, fmt.Errorf("missing private key, use the --key option")
	}
	return account.PrivateKeyFromBase58(m.key)
}

func parseAccount(s string, name string) (account.Account, error) {
	a, err := account.AccountFromBase58(s)
	if nil != err {
		return a, fmt.Errorf("%s: %q error: %s", name, s, err)
	}
	return a, nil
}

func parseHandle(s string, name string) (storagehandle.Handle, error) {
	h, err := storagehandle.HandleFromBase58(s)
	if nil != err {
		return h, fmt.Errorf("%s: %q error: %s", name, s, err)
	}
	return h, nil
}

// decode a creator flag of the form ACCOUNT:SHARE
func parseCreator(s string) (ledger.Creator, error) {
	creator := ledger.Creator{}

	i := strings.LastIndex(s, ":")
	if i <= 0 || i == len(s)-1 {
		return creator, fmt.Errorf("creator: %q is not ACCOUNT:SHARE", s)
	}

	address, err := parseAccount(s[:i], "creator account")
	if nil != err {
		return creator, err
	}

	share, err := strconv.ParseUint(s[i+1:], 10, 8)
	if nil != err {
		return creator, fmt.Errorf("creator share: %q error: %s", s[i+1:], err)
	}

	creator.Address = address
	creator.Share = uint8(share)
	return creator, nil
}

// decode a record flag of the form NAME,URI
func parseRecord(s string) (ledger.TemplateRecord, error) {
	record := ledger.TemplateRecord{}

	i := strings.Index(s, ",")
	if i <= 0 || i == len(s)-1 {
		return record, fmt.Errorf("record: %q is not NAME,URI", s)
	}

	record.Name = s[:i]
	record.Uri = s[i+1:]
	return record, nil
}
