// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/payment"
	"github.com/dropmint/dropmintd/storagehandle"
)

// FundsService - the reference transfer service behind the funds calls
type FundsService interface {
	payment.Transferrer
	Deposit(owner account.Account, amount uint64) (uint64, error)
	CreateHolding(owner account.Account, asset storagehandle.Handle, balance uint64) (storagehandle.Handle, error)
}

// Funds - type for the RPC
type Funds struct {
	log     *logger.L
	limiter *rate.Limiter
	service FundsService
}

// FundsDepositArguments - arguments for the local network faucet
type FundsDepositArguments struct {
	Owner  account.Account `json:"owner"`
	Amount uint64          `json:"amount"`
}

// FundsDepositReply - result from the deposit RPC
type FundsDepositReply struct {
	Balance uint64 `json:"balance"`
}

// Deposit - add native asset funds to an account
func (f *Funds) Deposit(arguments *FundsDepositArguments, reply *FundsDepositReply) error {
	if err := rateLimit(f.limiter); nil != err {
		return err
	}

	f.log.Infof("Funds.Deposit: %s amount: %d", arguments.Owner, arguments.Amount)

	balance, err := f.service.Deposit(arguments.Owner, arguments.Amount)
	if nil != err {
		return err
	}

	reply.Balance = balance
	return nil
}

// FundsCreateHoldingArguments - arguments for creating an asset holding
type FundsCreateHoldingArguments struct {
	Owner   account.Account      `json:"owner"`
	Asset   storagehandle.Handle `json:"asset"`
	Balance uint64               `json:"balance"`
}

// FundsCreateHoldingReply - result from the create holding RPC
type FundsCreateHoldingReply struct {
	Handle storagehandle.Handle `json:"handle"`
}

// CreateHolding - create an account's holding for an asset
func (f *Funds) CreateHolding(arguments *FundsCreateHoldingArguments, reply *FundsCreateHoldingReply) error {
	if err := rateLimit(f.limiter); nil != err {
		return err
	}

	f.log.Infof("Funds.CreateHolding: %s asset: %s", arguments.Owner, arguments.Asset)

	handle, err := f.service.CreateHolding(arguments.Owner, arguments.Asset, arguments.Balance)
	if nil != err {
		return err
	}

	reply.Handle = handle
	return nil
}

// FundsBalanceArguments - arguments for the balance query
type FundsBalanceArguments struct {
	Owner account.Account `json:"owner"`
}

// FundsBalanceReply - result from the balance RPC
type FundsBalanceReply struct {
	Balance uint64 `json:"balance"`
}

// Balance - native asset balance of an account
func (f *Funds) Balance(arguments *FundsBalanceArguments, reply *FundsBalanceReply) error {
	if err := rateLimit(f.limiter); nil != err {
		return err
	}

	balance, err := f.service.NativeBalance(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Balance = balance
	return nil
}
