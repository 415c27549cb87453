// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/dropmint/dropmintd/fault"
)

// Pack - create the backing region for a configuration
//
// the region is allocated at its final size: header, live count and
// all template slots; the live count starts at zero and the slots are
// undefined until appended
func (config *Configuration) Pack() (Region, error) {
	if IdentifierLength != len(config.Identifier) {
		return nil, fault.ErrInvalidIdentifierLength
	}
	if len(config.Creators) > MaxCreatorLimit-1 {
		return nil, fault.ErrTooManyCreators
	}
	if len(config.Symbol) > maxSymbolLength {
		return nil, fault.ErrSymbolTooLong
	}
	if config.RoyaltyBasisPoints > maxRoyaltyBasisPoints {
		return nil, fault.ErrInvalidRoyaltyRate
	}
	if 0 == config.DeclaredCapacity {
		return nil, fault.ErrMissingParameters
	}

	region := make(Region, RegionSize(config.DeclaredCapacity))

	n := 0
	region[n] = headerVersion
	n += 1

	n += copy(region[n:], config.Operator[:])

	n = putPaddedString(region, n, config.Identifier, IdentifierLength)
	n = putPaddedString(region, n, config.Symbol, maxSymbolLength)

	binary.LittleEndian.PutUint16(region[n:], config.RoyaltyBasisPoints)
	n += 2

	if 0 == len(config.Creators) {
		region[n] = 0
	} else {
		region[n] = 1
	}
	n += 1
	binary.LittleEndian.PutUint32(region[n:], uint32(len(config.Creators)))
	n += 4
	for _, creator := range config.Creators {
		n += copy(region[n:], creator.Address[:])
		if creator.Verified {
			region[n] = 1
		}
		n += 1
		region[n] = creator.Share
		n += 1
	}
	n += (MaxCreatorLimit - len(config.Creators)) * creatorByteSize

	binary.LittleEndian.PutUint64(region[n:], config.MaxSupplyPerItem)
	n += 8

	if config.IsMutable {
		region[n] = 1
	}
	n += 1
	if config.RetainsUpdateAuthority {
		region[n] = 1
	}
	n += 1

	binary.LittleEndian.PutUint32(region[n:], config.DeclaredCapacity)

	// live count and slots stay zero
	return region, nil
}

// write a length prefixed field zero padded to a fixed width
//
// the prefix records the padded width; a value longer than the width
// must be rejected by the caller before packing
func putPaddedString(buffer []byte, n int, s string, width int) int {
	binary.LittleEndian.PutUint32(buffer[n:], uint32(width))
	n += 4
	copy(buffer[n:n+width], s)
	return n + width
}

// read a length prefixed zero padded field
//
// trailing zero bytes are not part of the logical string
func getPaddedString(buffer []byte, n int, width int) (string, int, error) {
	if n+4+width > len(buffer) {
		return "", 0, fault.ErrRegionTooSmall
	}
	length := int(binary.LittleEndian.Uint32(buffer[n:]))
	if length > width {
		return "", 0, fault.ErrRegionTooSmall
	}
	n += 4
	field := buffer[n : n+length]
	end := len(field)
	for end > 0 && 0 == field[end-1] {
		end -= 1
	}
	return string(field[:end]), n + width, nil
}
