// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"math"

	"github.com/dropmint/dropmintd/fault"
)

// LiveCount - number of well formed template slots
func (region Region) LiveCount() (uint32, error) {
	if len(region) < slotsOffset {
		return 0, fault.ErrRegionTooSmall
	}
	return binary.LittleEndian.Uint32(region[liveCountOffset:]), nil
}

// DeclaredCapacity - total template slots in the region
func (region Region) DeclaredCapacity() (uint32, error) {
	if len(region) < slotsOffset {
		return 0, fault.ErrRegionTooSmall
	}
	return binary.LittleEndian.Uint32(region[capacityOffset:]), nil
}

// Append - patch template records into their slots and bump the live count
//
// this is an in-place sub-range patch of the backing bytes, the region
// is deliberately not decoded as a whole.  Records overwrite whatever
// was in the target slots; callers must not re-append over slots that
// have already been claimed.
func (region Region) Append(startIndex uint32, records []TemplateRecord) error {
	capacity, err := region.DeclaredCapacity()
	if nil != err {
		return err
	}
	if startIndex >= capacity {
		return fault.ErrIndexOutOfRange
	}
	if uint64(startIndex)+uint64(len(records)) > uint64(capacity) {
		return fault.ErrIndexOutOfRange
	}

	// validate all widths before patching anything; no silent truncation
	for _, record := range records {
		if len(record.Name) > MaxNameLength {
			return fault.ErrNameTooLong
		}
		if len(record.Uri) > MaxUriLength {
			return fault.ErrUriTooLong
		}
	}

	currentCount, err := region.LiveCount()
	if nil != err {
		return err
	}
	newCount := uint64(currentCount) + uint64(len(records))
	if newCount > math.MaxUint32 {
		return fault.ErrCountOverflow
	}

	n := slotsOffset + int(startIndex)*SlotSize
	for _, record := range records {
		// clear the slot so shorter strings leave no residue
		for i := n; i < n+SlotSize; i += 1 {
			region[i] = 0
		}
		n = putPaddedString(region, n, record.Name, MaxNameLength)
		n = putPaddedString(region, n, record.Uri, MaxUriLength)
	}

	binary.LittleEndian.PutUint32(region[liveCountOffset:], uint32(newCount))
	return nil
}

// Record - decode the template record at an index
//
// only slots below the live count are well formed
func (region Region) Record(index uint32) (*TemplateRecord, error) {
	total, err := region.LiveCount()
	if nil != err {
		return nil, err
	}
	if index >= total {
		return nil, fault.ErrIndexOutOfRange
	}

	n := slotsOffset + int(index)*SlotSize

	record := &TemplateRecord{}
	record.Name, n, err = getPaddedString(region, n, MaxNameLength)
	if nil != err {
		return nil, err
	}
	record.Uri, _, err = getPaddedString(region, n, MaxUriLength)
	if nil != err {
		return nil, err
	}
	return record, nil
}
