// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"fmt"
	"time"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/ledger"
	"github.com/dropmint/dropmintd/rpc"
	"github.com/dropmint/dropmintd/storagehandle"
)

// CreateClaimLedger - store the mutable sale state for a configuration
func (client *Client) CreateClaimLedger(claimLedger *ledger.ClaimLedger, key account.PrivateKey) (*rpc.ClaimLedgerCreateReply, error) {

	// the counter is forced to zero in the signed bytes
	claimLedger.RedeemedCount = 0

	message, err := rpc.CreateClaimLedgerMessage(claimLedger)
	if nil != err {
		return nil, err
	}

	arguments := rpc.ClaimLedgerCreateArguments{
		ClaimLedger: *claimLedger,
		Signature:   key.Sign(message),
	}

	if client.verbose {
		fmt.Fprintf(client.handle, "ClaimLedger.Create: %#v\n", arguments)
	}

	var reply rpc.ClaimLedgerCreateReply
	if err := client.client.Call("ClaimLedger.Create", arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// Claim - redeem one item against payment
//
// the holding is only needed for asset based sales and must belong to
// the signing account, the timestamp is the local clock and must be
// within the node's drift allowance
func (client *Client) Claim(claimLedger storagehandle.Handle, holding *storagehandle.Handle, updateAuthority account.Account, key account.PrivateKey) (*rpc.ClaimReply, error) {

	claimant := key.Account()
	timestamp := time.Now().Unix()

	message := rpc.ClaimMessage(claimLedger, claimant, timestamp, holding, updateAuthority)

	arguments := rpc.ClaimArguments{
		ClaimLedger:     claimLedger,
		Claimant:        claimant,
		Timestamp:       timestamp,
		Holding:         holding,
		UpdateAuthority: updateAuthority,
		Signature:       key.Sign(message),
	}

	if client.verbose {
		fmt.Fprintf(client.handle, "Claim.Execute: %#v\n", arguments)
	}

	var reply rpc.ClaimReply
	if err := client.client.Call("Claim.Execute", arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}
