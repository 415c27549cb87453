// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment_test

import (
	"testing"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/fault"
	"github.com/dropmint/dropmintd/ledger"
	"github.com/dropmint/dropmintd/payment"
	"github.com/dropmint/dropmintd/storagehandle"
)

// in-memory transfer service
type fakeTransferrer struct {
	balances  map[account.Account]uint64
	holdings  map[storagehandle.Handle]*payment.Holding
	transfers int
}

func newFakeTransferrer() *fakeTransferrer {
	return &fakeTransferrer{
		balances: map[account.Account]uint64{},
		holdings: map[storagehandle.Handle]*payment.Holding{},
	}
}

func (f *fakeTransferrer) NativeBalance(owner account.Account) (uint64, error) {
	return f.balances[owner], nil
}

func (f *fakeTransferrer) TransferNative(from account.Account, to account.Account, amount uint64) error {
	if f.balances[from] < amount {
		return fault.ErrInsufficientFunds
	}
	f.balances[from] -= amount
	f.balances[to] += amount
	f.transfers += 1
	return nil
}

func (f *fakeTransferrer) Holding(holding storagehandle.Handle) (*payment.Holding, error) {
	h, ok := f.holdings[holding]
	if !ok {
		return nil, fault.ErrRecordNotFound
	}
	return h, nil
}

func (f *fakeTransferrer) TransferAsset(holding storagehandle.Handle, authority account.Account, to storagehandle.Handle, amount uint64) error {
	source := f.holdings[holding]
	if source.Balance < amount {
		return fault.ErrInsufficientFunds
	}
	source.Balance -= amount
	if destination, ok := f.holdings[to]; ok {
		destination.Balance += amount
	}
	f.transfers += 1
	return nil
}

func claimant() account.Account {
	var a account.Account
	a[0] = 0xc1
	return a
}

func treasury() account.Account {
	var a account.Account
	a[0] = 0x77
	return a
}

func nativeClaimLedger(price uint64) *ledger.ClaimLedger {
	return &ledger.ClaimLedger{
		Operator:       claimant(),
		Treasury:       treasury(),
		Price:          price,
		TotalAvailable: 10,
	}
}

// a native balance of price-1 fails, exactly price succeeds
func TestSettleNativeBoundary(t *testing.T) {

	const price = 5000

	transferrer := newFakeTransferrer()
	transferrer.balances[claimant()] = price - 1

	claimLedger := nativeClaimLedger(price)

	err := payment.Settle(transferrer, claimLedger, claimant(), nil)
	if fault.ErrInsufficientFunds != err {
		t.Fatalf("price-1 balance: %v  expected: %s", err, fault.ErrInsufficientFunds)
	}
	if 0 != transferrer.transfers {
		t.Fatalf("failed settlement moved funds")
	}

	transferrer.balances[claimant()] = price
	if err := payment.Settle(transferrer, claimLedger, claimant(), nil); nil != err {
		t.Fatalf("exact balance rejected: %s", err)
	}
	if price != transferrer.balances[treasury()] {
		t.Errorf("treasury balance: %d  expected: %d", transferrer.balances[treasury()], price)
	}
	if 0 != transferrer.balances[claimant()] {
		t.Errorf("claimant balance: %d  expected: 0", transferrer.balances[claimant()])
	}
}

// asset route: holding must match the required asset and cover the price
func TestSettleAssetRoute(t *testing.T) {

	const price = 300

	asset := storagehandle.Derive("test:asset", []byte("pay"))
	wrongAsset := storagehandle.Derive("test:asset", []byte("other"))
	holdingHandle := storagehandle.Derive("test:holding", []byte("claimant"))
	treasuryHolding := storagehandle.Handle(treasury())

	transferrer := newFakeTransferrer()
	transferrer.holdings[holdingHandle] = &payment.Holding{Asset: asset, Owner: claimant(), Balance: price}
	transferrer.holdings[treasuryHolding] = &payment.Holding{Asset: asset, Balance: 0}

	claimLedger := nativeClaimLedger(price)
	claimLedger.PaymentAsset = &asset

	proof := &payment.Proof{Holding: holdingHandle}

	// wrong asset
	transferrer.holdings[holdingHandle].Asset = wrongAsset
	if err := payment.Settle(transferrer, claimLedger, claimant(), proof); fault.ErrAssetMismatch != err {
		t.Fatalf("wrong asset: %v  expected: %s", err, fault.ErrAssetMismatch)
	}
	transferrer.holdings[holdingHandle].Asset = asset

	// short balance
	transferrer.holdings[holdingHandle].Balance = price - 1
	if err := payment.Settle(transferrer, claimLedger, claimant(), proof); fault.ErrInsufficientFunds != err {
		t.Fatalf("short balance: %v  expected: %s", err, fault.ErrInsufficientFunds)
	}
	transferrer.holdings[holdingHandle].Balance = price

	// missing proof
	if err := payment.Settle(transferrer, claimLedger, claimant(), nil); fault.ErrMissingParameters != err {
		t.Fatalf("missing proof: %v", err)
	}

	// success
	if err := payment.Settle(transferrer, claimLedger, claimant(), proof); nil != err {
		t.Fatalf("settle error: %s", err)
	}
	if price != transferrer.holdings[treasuryHolding].Balance {
		t.Errorf("treasury holding balance: %d", transferrer.holdings[treasuryHolding].Balance)
	}
}

// a holding owned by anyone but the claimant must never settle, the
// claimant's signature is the only spend authorisation
func TestSettleRejectsForeignHolding(t *testing.T) {

	const price = 1000

	asset := storagehandle.Derive("test:asset", []byte("pay"))
	victimHandle := storagehandle.Derive("test:holding", []byte("victim"))

	victim := treasury() // any account that is not the claimant

	transferrer := newFakeTransferrer()
	transferrer.holdings[victimHandle] = &payment.Holding{Asset: asset, Owner: victim, Balance: price}

	claimLedger := nativeClaimLedger(price)
	claimLedger.PaymentAsset = &asset

	proof := &payment.Proof{Holding: victimHandle}

	err := payment.Settle(transferrer, claimLedger, claimant(), proof)
	if fault.ErrWrongOwner != err {
		t.Fatalf("foreign holding: %v  expected: %s", err, fault.ErrWrongOwner)
	}
	if 0 != transferrer.transfers {
		t.Fatalf("rejected settlement moved funds")
	}
	if price != transferrer.holdings[victimHandle].Balance {
		t.Errorf("victim holding balance: %d  expected: %d", transferrer.holdings[victimHandle].Balance, price)
	}
}

// treasury validation for claim ledger creation
func TestValidateTreasury(t *testing.T) {

	asset := storagehandle.Derive("test:asset", []byte("pay"))
	other := storagehandle.Derive("test:asset", []byte("not-pay"))

	transferrer := newFakeTransferrer()

	// native sales need no holding
	if err := payment.ValidateTreasury(transferrer, treasury(), nil); nil != err {
		t.Fatalf("native treasury rejected: %s", err)
	}

	// no holding behind the treasury address
	if err := payment.ValidateTreasury(transferrer, treasury(), &asset); fault.ErrTreasuryIsNotHolding != err {
		t.Fatalf("missing holding: %v", err)
	}

	transferrer.holdings[storagehandle.Handle(treasury())] = &payment.Holding{Asset: other}
	if err := payment.ValidateTreasury(transferrer, treasury(), &asset); fault.ErrAssetMismatch != err {
		t.Fatalf("wrong asset holding: %v", err)
	}

	transferrer.holdings[storagehandle.Handle(treasury())].Asset = asset
	if err := payment.ValidateTreasury(transferrer, treasury(), &asset); nil != err {
		t.Fatalf("valid treasury rejected: %s", err)
	}
}
