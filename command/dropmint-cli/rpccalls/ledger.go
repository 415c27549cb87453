// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"fmt"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/ledger"
	"github.com/dropmint/dropmintd/rpc"
	"github.com/dropmint/dropmintd/storagehandle"
)

// CreateLedger - store a new sale configuration on the node
//
// the private key must belong to the configured operator account
func (client *Client) CreateLedger(configuration *ledger.Configuration, key account.PrivateKey) (*rpc.LedgerCreateReply, error) {

	message, err := rpc.CreateLedgerMessage(configuration)
	if nil != err {
		return nil, err
	}

	arguments := rpc.LedgerCreateArguments{
		Configuration: *configuration,
		Signature:     key.Sign(message),
	}

	if client.verbose {
		fmt.Fprintf(client.handle, "Ledger.Create: %#v\n", arguments)
	}

	var reply rpc.LedgerCreateReply
	if err := client.client.Call("Ledger.Create", arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// AppendRecords - patch template records into the configuration region
func (client *Client) AppendRecords(configuration storagehandle.Handle, startIndex uint32, records []ledger.TemplateRecord, key account.PrivateKey) (*rpc.LedgerAppendReply, error) {

	message := rpc.AppendMessage(configuration, startIndex, records)

	arguments := rpc.LedgerAppendArguments{
		Operator:      key.Account(),
		Configuration: configuration,
		StartIndex:    startIndex,
		Records:       records,
		Signature:     key.Sign(message),
	}

	if client.verbose {
		fmt.Fprintf(client.handle, "Ledger.Append: %#v\n", arguments)
	}

	var reply rpc.LedgerAppendReply
	if err := client.client.Call("Ledger.Append", arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}
