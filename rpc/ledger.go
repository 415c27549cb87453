// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/ledger"
	"github.com/dropmint/dropmintd/minting"
	"github.com/dropmint/dropmintd/storagehandle"
)

// Ledger - type for the RPC
type Ledger struct {
	log     *logger.L
	limiter *rate.Limiter
}

// the maximum number of template records in one append
const maximumRecords = 100

// LedgerCreateArguments - arguments for creating a sale configuration
type LedgerCreateArguments struct {
	Configuration ledger.Configuration `json:"configuration"`
	Signature     account.Signature    `json:"signature"`
}

// LedgerCreateReply - result from the create RPC
type LedgerCreateReply struct {
	Handle storagehandle.Handle `json:"handle"`
}

// Create - store a sale configuration with its template region
func (l *Ledger) Create(arguments *LedgerCreateArguments, reply *LedgerCreateReply) error {
	if err := rateLimit(l.limiter); nil != err {
		return err
	}

	log := l.log
	log.Infof("Ledger.Create: %q", arguments.Configuration.Identifier)

	message, err := CreateLedgerMessage(&arguments.Configuration)
	if nil != err {
		return err
	}
	if err := arguments.Configuration.Operator.CheckSignature(message, arguments.Signature); nil != err {
		return err
	}

	handle, err := minting.CreateConfiguration(&arguments.Configuration)
	if nil != err {
		return err
	}

	reply.Handle = handle
	return nil
}

// LedgerAppendArguments - arguments for appending template records
type LedgerAppendArguments struct {
	Operator      account.Account         `json:"operator"`
	Configuration storagehandle.Handle    `json:"configuration"`
	StartIndex    uint32                  `json:"startIndex"`
	Records       []ledger.TemplateRecord `json:"records"`
	Signature     account.Signature       `json:"signature"`
}

// LedgerAppendReply - result from the append RPC
type LedgerAppendReply struct {
	LiveCount uint32 `json:"liveCount"`
}

// Append - patch template records into a configuration region
func (l *Ledger) Append(arguments *LedgerAppendArguments, reply *LedgerAppendReply) error {
	if err := rateLimitN(l.limiter, len(arguments.Records), maximumRecords); nil != err {
		return err
	}

	log := l.log
	log.Infof("Ledger.Append: %s start: %d count: %d", arguments.Configuration, arguments.StartIndex, len(arguments.Records))

	message := AppendMessage(arguments.Configuration, arguments.StartIndex, arguments.Records)
	if err := arguments.Operator.CheckSignature(message, arguments.Signature); nil != err {
		return err
	}

	liveCount, err := minting.AppendRecords(arguments.Operator, arguments.Configuration, arguments.StartIndex, arguments.Records)
	if nil != err {
		return err
	}

	reply.LiveCount = liveCount
	return nil
}
