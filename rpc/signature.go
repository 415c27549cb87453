// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/binary"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/ledger"
	"github.com/dropmint/dropmintd/storagehandle"
)

// canonical byte forms of the mutating requests
//
// the client signs exactly these bytes, the server rebuilds them from
// the received request and verifies; any field mismatch invalidates
// the signature

// CreateLedgerMessage - signed bytes for Ledger.Create
//
// the packed configuration header, so the signature pins every sale
// term including the declared capacity
func CreateLedgerMessage(configuration *ledger.Configuration) ([]byte, error) {
	region, err := configuration.Pack()
	if nil != err {
		return nil, err
	}
	return region[:ledger.HeaderSize], nil
}

// AppendMessage - signed bytes for Ledger.Append
func AppendMessage(configuration storagehandle.Handle, startIndex uint32, records []ledger.TemplateRecord) []byte {
	buffer := make([]byte, 0, storagehandle.HandleLength+4+len(records)*ledger.SlotSize)
	buffer = append(buffer, configuration[:]...)
	buffer = appendUint32(buffer, startIndex)
	for _, record := range records {
		buffer = appendString(buffer, record.Name)
		buffer = appendString(buffer, record.Uri)
	}
	return buffer
}

// CreateClaimLedgerMessage - signed bytes for ClaimLedger.Create
func CreateClaimLedgerMessage(claimLedger *ledger.ClaimLedger) ([]byte, error) {
	return claimLedger.Pack()
}

// ClaimMessage - signed bytes for Claim.Execute
func ClaimMessage(claimLedger storagehandle.Handle, claimant account.Account, timestamp int64, holding *storagehandle.Handle, updateAuthority account.Account) []byte {
	buffer := make([]byte, 0, 4*storagehandle.HandleLength+8+1)
	buffer = append(buffer, claimLedger[:]...)
	buffer = append(buffer, claimant[:]...)
	buffer = appendUint64(buffer, uint64(timestamp))
	if nil == holding {
		buffer = append(buffer, 0x00)
	} else {
		buffer = append(buffer, 0x01)
		buffer = append(buffer, holding[:]...)
	}
	buffer = append(buffer, updateAuthority[:]...)
	return buffer
}

func appendUint32(buffer []byte, value uint32) []byte {
	scratch := make([]byte, 4)
	binary.LittleEndian.PutUint32(scratch, value)
	return append(buffer, scratch...)
}

func appendUint64(buffer []byte, value uint64) []byte {
	scratch := make([]byte, 8)
	binary.LittleEndian.PutUint64(scratch, value)
	return append(buffer, scratch...)
}

func appendString(buffer []byte, s string) []byte {
	buffer = appendUint32(buffer, uint32(len(s)))
	return append(buffer, s...)
}
