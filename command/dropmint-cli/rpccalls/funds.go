// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"fmt"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/rpc"
	"github.com/dropmint/dropmintd/storagehandle"
)

// Deposit - add native asset funds to an account on a local network
func (client *Client) Deposit(owner account.Account, amount uint64) (*rpc.FundsDepositReply, error) {

	arguments := rpc.FundsDepositArguments{
		Owner:  owner,
		Amount: amount,
	}

	if client.verbose {
		fmt.Fprintf(client.handle, "Funds.Deposit: %#v\n", arguments)
	}

	var reply rpc.FundsDepositReply
	if err := client.client.Call("Funds.Deposit", arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// CreateHolding - create an asset holding for an account
func (client *Client) CreateHolding(owner account.Account, asset storagehandle.Handle, balance uint64) (*rpc.FundsCreateHoldingReply, error) {

	arguments := rpc.FundsCreateHoldingArguments{
		Owner:   owner,
		Asset:   asset,
		Balance: balance,
	}

	if client.verbose {
		fmt.Fprintf(client.handle, "Funds.CreateHolding: %#v\n", arguments)
	}

	var reply rpc.FundsCreateHoldingReply
	if err := client.client.Call("Funds.CreateHolding", arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// Balance - native asset balance of an account
func (client *Client) Balance(owner account.Account) (*rpc.FundsBalanceReply, error) {

	arguments := rpc.FundsBalanceArguments{
		Owner: owner,
	}

	var reply rpc.FundsBalanceReply
	if err := client.client.Call("Funds.Balance", arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}
