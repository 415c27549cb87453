// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package funds - reference fungible asset transfer service
//
// a payment.Transferrer backed by the local storage pools, used when
// the daemon runs self contained instead of delegating to an external
// asset network
//
// native balances are one 8 byte value per account; a holding is one
// fixed width record per account, so an account holds at most one
// asset, which is all the claim flow needs
package funds

import (
	"encoding/binary"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/fault"
	"github.com/dropmint/dropmintd/payment"
	"github.com/dropmint/dropmintd/storage"
	"github.com/dropmint/dropmintd/storagehandle"
)

// packed holding: asset 32, owner 32, balance 8
const holdingSize = storagehandle.HandleLength + account.AccountLength + 8

// Service - the transfer service over local pools
type Service struct{}

// New - create the transfer service
func New() *Service {
	return &Service{}
}

// HoldingHandle - the storage handle of an account's holding
func HoldingHandle(owner account.Account) storagehandle.Handle {
	return storagehandle.Handle(owner)
}

// NativeBalance - current native asset balance of an account
//
// an account that has never been funded has balance zero
func (s *Service) NativeBalance(owner account.Account) (uint64, error) {
	balance, _ := storage.Pool.Balances.GetN(owner[:])
	return balance, nil
}

// TransferNative - move native asset funds between accounts
func (s *Service) TransferNative(from account.Account, to account.Account, amount uint64) error {
	fromBalance, _ := storage.Pool.Balances.GetN(from[:])
	if fromBalance < amount {
		return fault.ErrInsufficientFunds
	}
	toBalance, _ := storage.Pool.Balances.GetN(to[:])
	if toBalance+amount < toBalance {
		return fault.ErrBalanceOverflow
	}

	batch := storage.NewBatch()
	batch.Put(storage.Pool.Balances, from[:], packBalance(fromBalance-amount))
	batch.Put(storage.Pool.Balances, to[:], packBalance(toBalance+amount))
	return batch.Commit()
}

// Holding - look up an asset holding
func (s *Service) Holding(holding storagehandle.Handle) (*payment.Holding, error) {
	buffer := storage.Pool.Holdings.Get(holding[:])
	if nil == buffer {
		return nil, fault.ErrRecordNotFound
	}
	return unpackHolding(buffer)
}

// TransferAsset - move fungible asset funds between holdings
//
// the authority must be the owner of the source holding and the
// destination holding must already exist for the same asset
func (s *Service) TransferAsset(holding storagehandle.Handle, authority account.Account, to storagehandle.Handle, amount uint64) error {
	source, err := s.Holding(holding)
	if nil != err {
		return err
	}
	if authority != source.Owner {
		return fault.ErrWrongOwner
	}
	if source.Balance < amount {
		return fault.ErrInsufficientFunds
	}

	destination, err := s.Holding(to)
	if nil != err {
		return fault.ErrTreasuryIsNotHolding
	}
	if destination.Asset != source.Asset {
		return fault.ErrAssetMismatch
	}
	if destination.Balance+amount < destination.Balance {
		return fault.ErrBalanceOverflow
	}

	source.Balance -= amount
	destination.Balance += amount

	batch := storage.NewBatch()
	batch.Put(storage.Pool.Holdings, holding[:], packHolding(source))
	batch.Put(storage.Pool.Holdings, to[:], packHolding(destination))
	return batch.Commit()
}

// Deposit - add native asset funds to an account
//
// local network faucet, used by the funds call and by tests
func (s *Service) Deposit(owner account.Account, amount uint64) (uint64, error) {
	balance, _ := storage.Pool.Balances.GetN(owner[:])
	if balance+amount < balance {
		return 0, fault.ErrBalanceOverflow
	}
	balance += amount

	batch := storage.NewBatch()
	batch.Put(storage.Pool.Balances, owner[:], packBalance(balance))
	if err := batch.Commit(); nil != err {
		return 0, err
	}
	return balance, nil
}

// CreateHolding - create an account's holding for an asset
//
// the handle is the account itself, so a treasury account given to a
// claim ledger resolves directly to its holding
func (s *Service) CreateHolding(owner account.Account, asset storagehandle.Handle, balance uint64) (storagehandle.Handle, error) {
	handle := HoldingHandle(owner)
	if storage.Pool.Holdings.Has(handle[:]) {
		return storagehandle.Handle{}, fault.ErrHoldingAlreadyExists
	}

	h := &payment.Holding{
		Asset:   asset,
		Owner:   owner,
		Balance: balance,
	}

	batch := storage.NewBatch()
	batch.Put(storage.Pool.Holdings, handle[:], packHolding(h))
	if err := batch.Commit(); nil != err {
		return storagehandle.Handle{}, err
	}
	return handle, nil
}

func packBalance(balance uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, balance)
	return buffer
}

func packHolding(holding *payment.Holding) []byte {
	buffer := make([]byte, holdingSize)
	n := copy(buffer, holding.Asset[:])
	n += copy(buffer[n:], holding.Owner[:])
	binary.LittleEndian.PutUint64(buffer[n:], holding.Balance)
	return buffer
}

func unpackHolding(buffer []byte) (*payment.Holding, error) {
	if holdingSize != len(buffer) {
		return nil, fault.ErrRegionTooSmall
	}
	holding := &payment.Holding{}
	n := copy(holding.Asset[:], buffer)
	n += copy(holding.Owner[:], buffer[n:])
	holding.Balance = binary.LittleEndian.Uint64(buffer[n:])
	return holding, nil
}
