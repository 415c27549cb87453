// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package issuance - reference issuance service
//
// a minting.Issuer backed by the local storage pools: the permanent
// descriptive record and the edition lock for each issued item
//
// both records are once-only, a repeated attach or lock for the same
// item is rejected
package issuance

import (
	"encoding/json"

	"github.com/dropmint/dropmintd/fault"
	"github.com/dropmint/dropmintd/minting"
	"github.com/dropmint/dropmintd/storage"
	"github.com/dropmint/dropmintd/storagehandle"
)

// Service - the issuance service over local pools
type Service struct{}

// New - create the issuance service
func New() *Service {
	return &Service{}
}

type issueRecord struct {
	Metadata        *minting.Metadata    `json:"metadata"`
	UpdateAuthority storagehandle.Handle `json:"updateAuthority"`
}

type editionRecord struct {
	MaxSupply       uint64               `json:"maxSupply"`
	UpdateAuthority storagehandle.Handle `json:"updateAuthority"`
}

// AttachMetadata - store the permanent descriptive record for an item
func (s *Service) AttachMetadata(item storagehandle.Handle, metadata *minting.Metadata, updateAuthority storagehandle.Handle) error {
	if storage.Pool.Issues.Has(item[:]) {
		return fault.ErrRecordAlreadyIssued
	}

	buffer, err := json.Marshal(issueRecord{
		Metadata:        metadata,
		UpdateAuthority: updateAuthority,
	})
	if nil != err {
		return err
	}

	batch := storage.NewBatch()
	batch.Put(storage.Pool.Issues, item[:], buffer)
	return batch.Commit()
}

// LockEdition - store the supply lock for an already issued item
func (s *Service) LockEdition(item storagehandle.Handle, maxSupply uint64, updateAuthority storagehandle.Handle) error {
	if !storage.Pool.Issues.Has(item[:]) {
		return fault.ErrRecordNotFound
	}
	if storage.Pool.Editions.Has(item[:]) {
		return fault.ErrEditionAlreadyLocked
	}

	buffer, err := json.Marshal(editionRecord{
		MaxSupply:       maxSupply,
		UpdateAuthority: updateAuthority,
	})
	if nil != err {
		return err
	}

	batch := storage.NewBatch()
	batch.Put(storage.Pool.Editions, item[:], buffer)
	return batch.Commit()
}

// Issued - the stored descriptive record for an item
func (s *Service) Issued(item storagehandle.Handle) (*minting.Metadata, storagehandle.Handle, error) {
	buffer := storage.Pool.Issues.Get(item[:])
	if nil == buffer {
		return nil, storagehandle.Handle{}, fault.ErrRecordNotFound
	}
	record := issueRecord{}
	if err := json.Unmarshal(buffer, &record); nil != err {
		return nil, storagehandle.Handle{}, err
	}
	return record.Metadata, record.UpdateAuthority, nil
}

// Edition - the stored supply lock for an item
func (s *Service) Edition(item storagehandle.Handle) (uint64, storagehandle.Handle, error) {
	buffer := storage.Pool.Editions.Get(item[:])
	if nil == buffer {
		return 0, storagehandle.Handle{}, fault.ErrRecordNotFound
	}
	record := editionRecord{}
	if err := json.Unmarshal(buffer, &record); nil != err {
		return 0, storagehandle.Handle{}, err
	}
	return record.MaxSupply, record.UpdateAuthority, nil
}
