// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - settle the price of a claim
//
// Routes the payment either as a native asset transfer or as a
// fungible asset transfer, chosen by whether the claim ledger has a
// required payment asset configured.  The actual movement of funds is
// delegated to a Transferrer supplied by the hosting runtime.
package payment

import (
	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/fault"
	"github.com/dropmint/dropmintd/ledger"
	"github.com/dropmint/dropmintd/storagehandle"
)

// Holding - a fungible asset holding account
type Holding struct {
	Asset   storagehandle.Handle `json:"asset"`
	Owner   account.Account      `json:"owner"`
	Balance uint64               `json:"balance"`
}

// Transferrer - the fungible asset transfer service
//
// implementations move funds on behalf of the claim state machine;
// any error they return is propagated verbatim
type Transferrer interface {

	// balance of the native asset for an account
	NativeBalance(owner account.Account) (uint64, error)

	// move native asset funds between accounts
	TransferNative(from account.Account, to account.Account, amount uint64) error

	// look up a holding account
	Holding(holding storagehandle.Handle) (*Holding, error)

	// move fungible asset funds out of a holding, authorised by the
	// account permitted to spend from it
	TransferAsset(holding storagehandle.Handle, authority account.Account, to storagehandle.Handle, amount uint64) error
}

// Proof - claimant supplied payment source for asset based sales
//
// the holding must be owned by the claimant; the claimant's verified
// signature on the claim is the only spend authorisation accepted
type Proof struct {
	Holding storagehandle.Handle `json:"holding"` // claimant owned holding of the required asset
}

// Settle - validate and transfer the price of one claim
//
// native route: the claimant pays from its own native balance
// asset route: the claimant pays from the supplied holding account and
// the treasury field of the claim ledger names the receiving holding
func Settle(transferrer Transferrer, claimLedger *ledger.ClaimLedger, claimant account.Account, proof *Proof) error {

	if nil == claimLedger.PaymentAsset {
		balance, err := transferrer.NativeBalance(claimant)
		if nil != err {
			return err
		}
		if balance < claimLedger.Price {
			return fault.ErrInsufficientFunds
		}
		return transferrer.TransferNative(claimant, claimLedger.Treasury, claimLedger.Price)
	}

	if nil == proof {
		return fault.ErrMissingParameters
	}

	holding, err := transferrer.Holding(proof.Holding)
	if nil != err {
		return err
	}

	// only the signature verified claimant can authorise the spend, so
	// the holding must belong to the claimant
	if holding.Owner != claimant {
		return fault.ErrWrongOwner
	}
	if holding.Asset != *claimLedger.PaymentAsset {
		return fault.ErrAssetMismatch
	}
	if holding.Balance < claimLedger.Price {
		return fault.ErrInsufficientFunds
	}

	return transferrer.TransferAsset(proof.Holding, claimant, storagehandle.Handle(claimLedger.Treasury), claimLedger.Price)
}

// ValidateTreasury - check that a treasury can receive the configured asset
//
// used at claim ledger creation: when a payment asset is required the
// treasury must be a holding account owned by that asset
func ValidateTreasury(transferrer Transferrer, treasury account.Account, paymentAsset *storagehandle.Handle) error {
	if nil == paymentAsset {
		return nil
	}

	holding, err := transferrer.Holding(storagehandle.Handle(treasury))
	if nil != err {
		return fault.ErrTreasuryIsNotHolding
	}
	if holding.Asset != *paymentAsset {
		return fault.ErrAssetMismatch
	}
	return nil
}
