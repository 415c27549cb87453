// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/storagehandle"
)

// byte sizes for various fields
const (
	IdentifierLength = 6   // derivation seed, exactly this long
	MaxNameLength    = 32  // template name, padded width
	MaxUriLength     = 200 // template uri, padded width
	maxSymbolLength  = 10  // sale symbol, padded width

	// one of the creator slots is reserved for the claim ledger
	// itself, so only MaxCreatorLimit-1 can be configured
	MaxCreatorLimit = 4

	maxRoyaltyBasisPoints = 10000

	creatorByteSize = account.AccountLength + 1 + 1 // address, verified flag, share
)

// header layout version
const headerVersion = 0x01

// configuration header layout
const configurationStart = 1 + // header version
	account.AccountLength + // operator
	4 + IdentifierLength + // length prefixed identifier
	4 + maxSymbolLength + // length prefixed zero padded symbol
	2 + // royalty basis points
	1 + 4 + MaxCreatorLimit*creatorByteSize + // option flag, count, creator slots
	8 + // max supply per item
	1 + // mutable flag
	1 + // retain authority flag
	4 // declared capacity

// HeaderSize - byte count of the configuration header
//
// the leading bytes of a packed region up to but excluding the live
// count, also the canonical bytes covered by a creation signature
const HeaderSize = configurationStart

// offsets relative to the region start
const (
	capacityOffset  = configurationStart - 4
	liveCountOffset = configurationStart
	slotsOffset     = configurationStart + 4
)

// SlotSize - fixed byte count of one template slot
const SlotSize = 4 + MaxNameLength + 4 + MaxUriLength

// Region - a packed sale region, header and template slots
type Region []byte

// Configuration - the unpacked configuration header
type Configuration struct {
	Operator               account.Account `json:"operator"`
	Identifier             string          `json:"identifier"`
	Symbol                 string          `json:"symbol"`
	RoyaltyBasisPoints     uint16          `json:"royaltyBasisPoints"`
	Creators               []Creator       `json:"creators"`
	MaxSupplyPerItem       uint64          `json:"maxSupplyPerItem"`
	IsMutable              bool            `json:"isMutable"`
	RetainsUpdateAuthority bool            `json:"retainsUpdateAuthority"`
	DeclaredCapacity       uint32          `json:"declaredCapacity"`
}

// Creator - royalty recipient of an issued item
type Creator struct {
	Address  account.Account `json:"address"`
	Verified bool            `json:"verified"`
	Share    uint8           `json:"share"` // in percent, not basis points
}

// TemplateRecord - one claimable item description
type TemplateRecord struct {
	Name string `json:"name"`
	Uri  string `json:"uri"`
}

// ClaimLedger - the unpacked claim ledger state
type ClaimLedger struct {
	Operator          account.Account      `json:"operator"`
	Treasury          account.Account      `json:"treasury"`
	PaymentAsset      *storagehandle.Handle `json:"paymentAsset"`      // nil means pay with the native asset
	Configuration     storagehandle.Handle  `json:"configuration"`     // back-reference to the sale region
	Identifier        string               `json:"identifier"`
	Price             uint64               `json:"price"`
	TotalAvailable    uint64               `json:"totalAvailable"`
	AvailabilityStart *int64               `json:"availabilityStart"` // unix seconds, nil means operator only
	RedeemedCount     uint64               `json:"redeemedCount"`
}

// RegionSize - total byte count of a region for a declared capacity
func RegionSize(declaredCapacity uint32) int {
	return slotsOffset + int(declaredCapacity)*SlotSize
}
