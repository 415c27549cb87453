// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/fault"
	"github.com/dropmint/dropmintd/ledger"
)

// fixed test accounts
func testAccount(fill byte) account.Account {
	var a account.Account
	for i := 0; i < len(a); i += 1 {
		a[i] = fill
	}
	return a
}

func makeConfiguration() *ledger.Configuration {
	return &ledger.Configuration{
		Operator:           testAccount(0x11),
		Identifier:         "abc123",
		Symbol:             "DROP",
		RoyaltyBasisPoints: 500,
		Creators: []ledger.Creator{
			{Address: testAccount(0x22), Verified: false, Share: 60},
			{Address: testAccount(0x33), Verified: false, Share: 40},
		},
		MaxSupplyPerItem:       1,
		IsMutable:              true,
		RetainsUpdateAuthority: true,
		DeclaredCapacity:       25,
	}
}

// header fields must survive a pack/unpack round trip
func TestConfigurationRoundTrip(t *testing.T) {

	config := makeConfiguration()

	region, err := config.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	if len(region) != ledger.RegionSize(config.DeclaredCapacity) {
		t.Fatalf("region size: %d  expected: %d", len(region), ledger.RegionSize(config.DeclaredCapacity))
	}

	unpacked, err := ledger.UnpackConfiguration(region)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	if unpacked.Operator != config.Operator {
		t.Errorf("operator mismatch")
	}
	if unpacked.Identifier != config.Identifier {
		t.Errorf("identifier: %q  expected: %q", unpacked.Identifier, config.Identifier)
	}
	if unpacked.Symbol != config.Symbol {
		t.Errorf("symbol: %q  expected: %q", unpacked.Symbol, config.Symbol)
	}
	if unpacked.RoyaltyBasisPoints != config.RoyaltyBasisPoints {
		t.Errorf("royalty: %d  expected: %d", unpacked.RoyaltyBasisPoints, config.RoyaltyBasisPoints)
	}
	if len(unpacked.Creators) != len(config.Creators) {
		t.Fatalf("creators: %d  expected: %d", len(unpacked.Creators), len(config.Creators))
	}
	for i, creator := range unpacked.Creators {
		if creator != config.Creators[i] {
			t.Errorf("creator: %d mismatch: %v", i, creator)
		}
	}
	if unpacked.MaxSupplyPerItem != config.MaxSupplyPerItem {
		t.Errorf("max supply mismatch")
	}
	if unpacked.IsMutable != config.IsMutable {
		t.Errorf("mutable flag mismatch")
	}
	if unpacked.RetainsUpdateAuthority != config.RetainsUpdateAuthority {
		t.Errorf("retain authority flag mismatch")
	}
	if unpacked.DeclaredCapacity != config.DeclaredCapacity {
		t.Errorf("capacity: %d  expected: %d", unpacked.DeclaredCapacity, config.DeclaredCapacity)
	}

	count, err := ledger.Region(region).LiveCount()
	if nil != err {
		t.Fatalf("live count error: %s", err)
	}
	if 0 != count {
		t.Errorf("fresh region live count: %d", count)
	}
}

// only a 6 character identifier is acceptable
func TestConfigurationIdentifierLength(t *testing.T) {

	for _, identifier := range []string{"", "abc12", "abc1234"} {
		config := makeConfiguration()
		config.Identifier = identifier
		if _, err := config.Pack(); fault.ErrInvalidIdentifierLength != err {
			t.Errorf("identifier %q: %v  expected: %s", identifier, err, fault.ErrInvalidIdentifierLength)
		}
	}

	config := makeConfiguration()
	config.Identifier = "xyz789"
	if _, err := config.Pack(); nil != err {
		t.Errorf("6 character identifier rejected: %s", err)
	}
}

// the 4th creator slot is reserved for the ledger itself
func TestConfigurationTooManyCreators(t *testing.T) {

	config := makeConfiguration()
	config.Creators = []ledger.Creator{
		{Address: testAccount(1), Share: 25},
		{Address: testAccount(2), Share: 25},
		{Address: testAccount(3), Share: 25},
		{Address: testAccount(4), Share: 25},
	}
	if _, err := config.Pack(); fault.ErrTooManyCreators != err {
		t.Errorf("4 creators: %v  expected: %s", err, fault.ErrTooManyCreators)
	}

	config.Creators = config.Creators[:3]
	if _, err := config.Pack(); nil != err {
		t.Errorf("3 creators rejected: %s", err)
	}
}

// remaining field validations
func TestConfigurationFieldLimits(t *testing.T) {

	config := makeConfiguration()
	config.Symbol = "TOOLONGSYMBOL"
	if _, err := config.Pack(); fault.ErrSymbolTooLong != err {
		t.Errorf("oversize symbol: %v", err)
	}

	config = makeConfiguration()
	config.RoyaltyBasisPoints = 10001
	if _, err := config.Pack(); fault.ErrInvalidRoyaltyRate != err {
		t.Errorf("royalty 10001: %v", err)
	}

	config = makeConfiguration()
	config.DeclaredCapacity = 0
	if _, err := config.Pack(); fault.ErrMissingParameters != err {
		t.Errorf("zero capacity: %v", err)
	}
}
