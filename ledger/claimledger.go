// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/fault"
	"github.com/dropmint/dropmintd/storagehandle"
)

// claim ledger record layout
//
// optional fields keep their value bytes when absent so every field
// sits at a fixed offset
const claimLedgerSize = 1 + // header version
	account.AccountLength + // operator
	account.AccountLength + // treasury
	1 + storagehandle.HandleLength + // optional payment asset
	storagehandle.HandleLength + // configuration handle
	4 + IdentifierLength + // length prefixed identifier
	8 + // price
	8 + // total available
	1 + 8 + // optional availability start
	8 // redeemed count

// the redeemed counter is the trailing 8 bytes, patched on each claim
const redeemedCountOffset = claimLedgerSize - 8

// Pack - encode a claim ledger state record
func (claimLedger *ClaimLedger) Pack() ([]byte, error) {
	if IdentifierLength != len(claimLedger.Identifier) {
		return nil, fault.ErrInvalidIdentifierLength
	}

	buffer := make([]byte, claimLedgerSize)

	n := 0
	buffer[n] = headerVersion
	n += 1

	n += copy(buffer[n:], claimLedger.Operator[:])
	n += copy(buffer[n:], claimLedger.Treasury[:])

	if nil != claimLedger.PaymentAsset {
		buffer[n] = 1
		copy(buffer[n+1:], claimLedger.PaymentAsset[:])
	}
	n += 1 + storagehandle.HandleLength

	n += copy(buffer[n:], claimLedger.Configuration[:])

	n = putPaddedString(buffer, n, claimLedger.Identifier, IdentifierLength)

	binary.LittleEndian.PutUint64(buffer[n:], claimLedger.Price)
	n += 8
	binary.LittleEndian.PutUint64(buffer[n:], claimLedger.TotalAvailable)
	n += 8

	if nil != claimLedger.AvailabilityStart {
		buffer[n] = 1
		binary.LittleEndian.PutUint64(buffer[n+1:], uint64(*claimLedger.AvailabilityStart))
	}
	n += 1 + 8

	binary.LittleEndian.PutUint64(buffer[n:], claimLedger.RedeemedCount)

	return buffer, nil
}

// UnpackClaimLedger - decode a claim ledger state record
func UnpackClaimLedger(buffer []byte) (*ClaimLedger, error) {
	if claimLedgerSize != len(buffer) {
		return nil, fault.ErrRegionTooSmall
	}
	if headerVersion != buffer[0] {
		return nil, fault.ErrRegionTooSmall
	}

	claimLedger := &ClaimLedger{}
	n := 1

	copy(claimLedger.Operator[:], buffer[n:])
	n += account.AccountLength
	copy(claimLedger.Treasury[:], buffer[n:])
	n += account.AccountLength

	if 0 != buffer[n] {
		asset := storagehandle.Handle{}
		copy(asset[:], buffer[n+1:])
		claimLedger.PaymentAsset = &asset
	}
	n += 1 + storagehandle.HandleLength

	copy(claimLedger.Configuration[:], buffer[n:])
	n += storagehandle.HandleLength

	var err error
	claimLedger.Identifier, n, err = getPaddedString(buffer, n, IdentifierLength)
	if nil != err {
		return nil, err
	}

	claimLedger.Price = binary.LittleEndian.Uint64(buffer[n:])
	n += 8
	claimLedger.TotalAvailable = binary.LittleEndian.Uint64(buffer[n:])
	n += 8

	if 0 != buffer[n] {
		start := int64(binary.LittleEndian.Uint64(buffer[n+1:]))
		claimLedger.AvailabilityStart = &start
	}
	n += 1 + 8

	claimLedger.RedeemedCount = binary.LittleEndian.Uint64(buffer[n:])

	return claimLedger, nil
}

// PatchRedeemedCount - patch just the redeemed counter of a packed record
func PatchRedeemedCount(buffer []byte, redeemedCount uint64) error {
	if claimLedgerSize != len(buffer) {
		return fault.ErrRegionTooSmall
	}
	binary.LittleEndian.PutUint64(buffer[redeemedCountOffset:], redeemedCount)
	return nil
}
