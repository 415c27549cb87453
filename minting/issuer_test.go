// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minting_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/ledger"
	"github.com/dropmint/dropmintd/minting"
	"github.com/dropmint/dropmintd/minting/mocks"
	"github.com/dropmint/dropmintd/storagehandle"
)

// exact content handed to the issuance service, including the implicit
// leading creator and the choice of update authority
func TestClaimIssuanceDelegation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	issuer := mocks.NewMockIssuer(ctl)
	transferrer := newMemoryTransferrer()
	setup(t, transferrer, issuer)
	defer teardown(t)

	now := time.Unix(1000000, 0)
	transferrer.balances[claimantAccount] = 10 * itemPrice

	configuration, err := minting.CreateConfiguration(&ledger.Configuration{
		Operator:           operatorAccount,
		Identifier:         "spring",
		Symbol:             "DROP",
		RoyaltyBasisPoints: 500,
		Creators: []ledger.Creator{
			{Address: operatorAccount, Verified: true, Share: 60},
			{Address: treasuryAccount, Verified: false, Share: 40},
		},
		MaxSupplyPerItem:       7,
		IsMutable:              true,
		RetainsUpdateAuthority: true,
		DeclaredCapacity:       1,
	})
	if nil != err {
		t.Fatalf("create configuration error: %s", err)
	}

	_, err = minting.AppendRecords(operatorAccount, configuration, 0,
		[]ledger.TemplateRecord{{Name: "item A", Uri: "https://example.com/a"}})
	if nil != err {
		t.Fatalf("append records error: %s", err)
	}

	handle, err := minting.CreateClaimLedger(&ledger.ClaimLedger{
		Operator:          operatorAccount,
		Treasury:          treasuryAccount,
		Configuration:     configuration,
		Identifier:        "sale01",
		Price:             itemPrice,
		TotalAvailable:    1,
		AvailabilityStart: int64Pointer(0),
	})
	if nil != err {
		t.Fatalf("create claim ledger error: %s", err)
	}

	item := minting.ItemHandle(handle, 0)

	expectedMetadata := &minting.Metadata{
		Name:               "item A",
		Symbol:             "DROP",
		Uri:                "https://example.com/a",
		RoyaltyBasisPoints: 500,
		Creators: []ledger.Creator{
			{Address: account.Account(handle), Verified: true, Share: 0},
			{Address: operatorAccount, Verified: false, Share: 60},
			{Address: treasuryAccount, Verified: false, Share: 40},
		},
		IsMutable: true,
	}

	// the configuration retains authority, so the claim ledger handle
	// is the update authority, not the claimant supplied party
	gomock.InOrder(
		issuer.EXPECT().AttachMetadata(item, expectedMetadata, handle).Return(nil),
		issuer.EXPECT().LockEdition(item, uint64(7), handle).Return(nil),
	)

	issued, err := minting.Claim(handle, claimantAccount, now, nil, claimantAccount)
	if nil != err {
		t.Fatalf("claim error: %s", err)
	}
	if item != issued.Item {
		t.Errorf("issued item: %s  expected: %s", issued.Item, item)
	}
}

// without retained authority the supplied party becomes the authority
func TestClaimSuppliedUpdateAuthority(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	issuer := mocks.NewMockIssuer(ctl)
	transferrer := newMemoryTransferrer()
	setup(t, transferrer, issuer)
	defer teardown(t)

	now := time.Unix(1000000, 0)
	transferrer.balances[claimantAccount] = 10 * itemPrice

	configuration := makeConfiguration(t, "spring", 1, 1)
	handle, err := minting.CreateClaimLedger(&ledger.ClaimLedger{
		Operator:          operatorAccount,
		Treasury:          treasuryAccount,
		Configuration:     configuration,
		Identifier:        "sale01",
		Price:             itemPrice,
		TotalAvailable:    1,
		AvailabilityStart: int64Pointer(0),
	})
	if nil != err {
		t.Fatalf("create claim ledger error: %s", err)
	}

	authority := storagehandle.Handle(claimantAccount)
	issuer.EXPECT().AttachMetadata(gomock.Any(), gomock.Any(), authority).Return(nil)
	issuer.EXPECT().LockEdition(gomock.Any(), uint64(1), authority).Return(nil)

	if _, err := minting.Claim(handle, claimantAccount, now, nil, claimantAccount); nil != err {
		t.Fatalf("claim error: %s", err)
	}
}
