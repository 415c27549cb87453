// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minting

import (
	"github.com/dropmint/dropmintd/ledger"
	"github.com/dropmint/dropmintd/storagehandle"
)

// Metadata - the permanent descriptive record attached to an issued item
type Metadata struct {
	Name               string           `json:"name"`
	Symbol             string           `json:"symbol"`
	Uri                string           `json:"uri"`
	RoyaltyBasisPoints uint16           `json:"royaltyBasisPoints"`
	Creators           []ledger.Creator `json:"creators"`
	IsMutable          bool             `json:"isMutable"`
}

// Issuer - the external issuance service
//
// both calls are once-only for a given item, repeats are rejected by
// the implementation; errors are propagated verbatim and abort the
// whole claim
type Issuer interface {

	// attach the permanent descriptive record to a newly minted item
	AttachMetadata(item storagehandle.Handle, metadata *Metadata, updateAuthority storagehandle.Handle) error

	// lock the item to a limited edition under an update authority
	LockEdition(item storagehandle.Handle, maxSupply uint64, updateAuthority storagehandle.Handle) error
}
