// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/fault"
)

// UnpackConfiguration - decode the configuration header of a region
//
// only the header is decoded; template slots are read individually
// through Region.Record
func UnpackConfiguration(region Region) (*Configuration, error) {
	if len(region) < slotsOffset {
		return nil, fault.ErrRegionTooSmall
	}
	if headerVersion != region[0] {
		return nil, fault.ErrRegionTooSmall
	}

	config := &Configuration{}
	n := 1

	copy(config.Operator[:], region[n:])
	n += account.AccountLength

	var err error
	config.Identifier, n, err = getPaddedString(region, n, IdentifierLength)
	if nil != err {
		return nil, err
	}
	config.Symbol, n, err = getPaddedString(region, n, maxSymbolLength)
	if nil != err {
		return nil, err
	}

	config.RoyaltyBasisPoints = binary.LittleEndian.Uint16(region[n:])
	n += 2

	n += 1 // option flag, implied by the count
	creatorCount := int(binary.LittleEndian.Uint32(region[n:]))
	n += 4
	if creatorCount > MaxCreatorLimit-1 {
		return nil, fault.ErrTooManyCreators
	}
	for i := 0; i < creatorCount; i += 1 {
		creator := Creator{}
		copy(creator.Address[:], region[n:])
		n += account.AccountLength
		creator.Verified = 0 != region[n]
		n += 1
		creator.Share = region[n]
		n += 1
		config.Creators = append(config.Creators, creator)
	}
	n += (MaxCreatorLimit - creatorCount) * creatorByteSize

	config.MaxSupplyPerItem = binary.LittleEndian.Uint64(region[n:])
	n += 8

	config.IsMutable = 0 != region[n]
	n += 1
	config.RetainsUpdateAuthority = 0 != region[n]
	n += 1

	config.DeclaredCapacity = binary.LittleEndian.Uint32(region[n:])

	if len(region) < RegionSize(config.DeclaredCapacity) {
		return nil, fault.ErrRegionTooSmall
	}

	return config, nil
}
