// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/fault"
	"github.com/dropmint/dropmintd/ledger"
	"github.com/dropmint/dropmintd/minting"
	"github.com/dropmint/dropmintd/payment"
	"github.com/dropmint/dropmintd/storagehandle"
)

// ClaimLedger - type for the RPC
type ClaimLedger struct {
	log     *logger.L
	limiter *rate.Limiter
}

// accepted difference between the signed timestamp and the node clock
const maximumTimestampDrift = 2 * time.Minute

// ClaimLedgerCreateArguments - arguments for creating a claim ledger
type ClaimLedgerCreateArguments struct {
	ClaimLedger ledger.ClaimLedger `json:"claimLedger"`
	Signature   account.Signature  `json:"signature"`
}

// ClaimLedgerCreateReply - result from the create RPC
type ClaimLedgerCreateReply struct {
	Handle storagehandle.Handle `json:"handle"`
}

// Create - store the mutable sale state for a configuration
func (c *ClaimLedger) Create(arguments *ClaimLedgerCreateArguments, reply *ClaimLedgerCreateReply) error {
	if err := rateLimit(c.limiter); nil != err {
		return err
	}

	log := c.log
	log.Infof("ClaimLedger.Create: %q on: %s", arguments.ClaimLedger.Identifier, arguments.ClaimLedger.Configuration)

	// the counter must be zero in the signed bytes as well
	arguments.ClaimLedger.RedeemedCount = 0

	message, err := CreateClaimLedgerMessage(&arguments.ClaimLedger)
	if nil != err {
		return err
	}
	if err := arguments.ClaimLedger.Operator.CheckSignature(message, arguments.Signature); nil != err {
		return err
	}

	handle, err := minting.CreateClaimLedger(&arguments.ClaimLedger)
	if nil != err {
		return err
	}

	reply.Handle = handle
	return nil
}

// Claim - type for the RPC
type Claim struct {
	log     *logger.L
	limiter *rate.Limiter
}

// ClaimArguments - arguments for redeeming one item
//
// holding is only needed for asset based sales and must be owned by
// the claimant
type ClaimArguments struct {
	ClaimLedger     storagehandle.Handle  `json:"claimLedger"`
	Claimant        account.Account       `json:"claimant"`
	Timestamp       int64                 `json:"timestamp"`
	Holding         *storagehandle.Handle `json:"holding"`
	UpdateAuthority account.Account       `json:"updateAuthority"`
	Signature       account.Signature     `json:"signature"`
}

// ClaimReply - result from the claim RPC
type ClaimReply struct {
	Item          storagehandle.Handle `json:"item"`
	TemplateIndex uint32               `json:"templateIndex"`
	Name          string               `json:"name"`
	Uri           string               `json:"uri"`
	RedeemedCount uint64               `json:"redeemedCount"`
}

// Execute - redeem one item against payment
func (c *Claim) Execute(arguments *ClaimArguments, reply *ClaimReply) error {
	if err := rateLimit(c.limiter); nil != err {
		return err
	}

	log := c.log
	log.Infof("Claim.Execute: %s by: %s", arguments.ClaimLedger, arguments.Claimant)

	message := ClaimMessage(arguments.ClaimLedger, arguments.Claimant, arguments.Timestamp, arguments.Holding, arguments.UpdateAuthority)
	if err := arguments.Claimant.CheckSignature(message, arguments.Signature); nil != err {
		return err
	}

	// the window check runs on the signed timestamp, so it must track
	// the node clock
	drift := time.Since(time.Unix(arguments.Timestamp, 0))
	if drift > maximumTimestampDrift || drift < -maximumTimestampDrift {
		return fault.ErrInvalidTimestamp
	}

	var proof *payment.Proof
	if nil != arguments.Holding {
		proof = &payment.Proof{
			Holding: *arguments.Holding,
		}
	}

	issued, err := minting.Claim(arguments.ClaimLedger, arguments.Claimant, time.Unix(arguments.Timestamp, 0), proof, arguments.UpdateAuthority)
	if nil != err {
		return err
	}

	reply.Item = issued.Item
	reply.TemplateIndex = issued.TemplateIndex
	reply.Name = issued.Name
	reply.Uri = issued.Uri
	reply.RedeemedCount = issued.RedeemedCount
	return nil
}
