// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minting

import (
	"encoding/binary"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/storagehandle"
)

// fixed derivation tags
//
// changing any of these breaks the ability of clients to recompute
// handles for already stored records
const (
	configurationTag = "dropmint:configuration"
	claimLedgerTag   = "dropmint:claim-ledger"
	itemTag          = "dropmint:item"
)

// ConfigurationHandle - storage handle of a sale configuration
//
// recomputable by anyone from the operator account and the identifier
func ConfigurationHandle(operator account.Account, identifier string) storagehandle.Handle {
	return storagehandle.Derive(configurationTag, operator[:], []byte(identifier))
}

// ClaimLedgerHandle - storage handle of a claim ledger
func ClaimLedgerHandle(configuration storagehandle.Handle, identifier string) storagehandle.Handle {
	return storagehandle.Derive(claimLedgerTag, configuration[:], []byte(identifier))
}

// ItemHandle - storage handle of the nth item issued under a claim ledger
func ItemHandle(claimLedger storagehandle.Handle, position uint64) storagehandle.Handle {
	buffer := make([]byte, 8)
	binary.LittleEndian.PutUint64(buffer, position)
	return storagehandle.Derive(itemTag, claimLedger[:], buffer)
}
