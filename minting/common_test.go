// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minting_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/dropmint/dropmintd/account"
	"github.com/dropmint/dropmintd/fault"
	"github.com/dropmint/dropmintd/ledger"
	"github.com/dropmint/dropmintd/minting"
	"github.com/dropmint/dropmintd/payment"
	"github.com/dropmint/dropmintd/storage"
	"github.com/dropmint/dropmintd/storagehandle"
)

const (
	testingDirName = "testing"
)

var databaseFileName = filepath.Join(testingDirName, "test.leveldb")

// remove all files created by test
func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T, transferrer payment.Transferrer, issuer minting.Issuer) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	if err := storage.Initialise(databaseFileName); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	if err := minting.Initialise(transferrer, issuer); nil != err {
		t.Fatalf("minting initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	_ = minting.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// in-memory transfer service
type memoryTransferrer struct {
	balances map[account.Account]uint64
	holdings map[storagehandle.Handle]*payment.Holding
}

func newMemoryTransferrer() *memoryTransferrer {
	return &memoryTransferrer{
		balances: map[account.Account]uint64{},
		holdings: map[storagehandle.Handle]*payment.Holding{},
	}
}

func (m *memoryTransferrer) NativeBalance(owner account.Account) (uint64, error) {
	return m.balances[owner], nil
}

func (m *memoryTransferrer) TransferNative(from account.Account, to account.Account, amount uint64) error {
	if m.balances[from] < amount {
		return fault.ErrInsufficientFunds
	}
	m.balances[from] -= amount
	m.balances[to] += amount
	return nil
}

func (m *memoryTransferrer) Holding(holding storagehandle.Handle) (*payment.Holding, error) {
	h, ok := m.holdings[holding]
	if !ok {
		return nil, fault.ErrRecordNotFound
	}
	return h, nil
}

func (m *memoryTransferrer) TransferAsset(holding storagehandle.Handle, authority account.Account, to storagehandle.Handle, amount uint64) error {
	source := m.holdings[holding]
	if source.Balance < amount {
		return fault.ErrInsufficientFunds
	}
	source.Balance -= amount
	if destination, ok := m.holdings[to]; ok {
		destination.Balance += amount
	}
	return nil
}

// issuance service that records what it was asked to mint
type recordingIssuer struct {
	metadata   map[storagehandle.Handle]*minting.Metadata
	editions   map[storagehandle.Handle]storagehandle.Handle
	failIssues error
}

func newRecordingIssuer() *recordingIssuer {
	return &recordingIssuer{
		metadata: map[storagehandle.Handle]*minting.Metadata{},
		editions: map[storagehandle.Handle]storagehandle.Handle{},
	}
}

func (r *recordingIssuer) AttachMetadata(item storagehandle.Handle, metadata *minting.Metadata, updateAuthority storagehandle.Handle) error {
	if nil != r.failIssues {
		return r.failIssues
	}
	r.metadata[item] = metadata
	return nil
}

func (r *recordingIssuer) LockEdition(item storagehandle.Handle, maxSupply uint64, updateAuthority storagehandle.Handle) error {
	if nil != r.failIssues {
		return r.failIssues
	}
	r.editions[item] = updateAuthority
	return nil
}

// fixed test accounts
func makeAccount(fill byte) account.Account {
	var a account.Account
	for i := 0; i < len(a); i += 1 {
		a[i] = fill
	}
	return a
}

var (
	operatorAccount = makeAccount(0x0f)
	claimantAccount = makeAccount(0xc1)
	treasuryAccount = makeAccount(0x77)
)

func int64Pointer(n int64) *int64 {
	return &n
}

// a treasury account addressed as a holding
func storageHandleOf(a account.Account) storagehandle.Handle {
	return storagehandle.Handle(a)
}

// store a configuration with a number of template records
func makeConfiguration(t *testing.T, identifier string, capacity uint32, records int) storagehandle.Handle {
	handle, err := minting.CreateConfiguration(&ledger.Configuration{
		Operator:           operatorAccount,
		Identifier:         identifier,
		Symbol:             "DROP",
		RoyaltyBasisPoints: 500,
		Creators: []ledger.Creator{
			{Address: operatorAccount, Verified: true, Share: 100},
		},
		MaxSupplyPerItem: 1,
		IsMutable:        true,
		DeclaredCapacity: capacity,
	})
	if nil != err {
		t.Fatalf("create configuration error: %s", err)
	}

	templates := make([]ledger.TemplateRecord, records)
	for i := 0; i < records; i += 1 {
		templates[i] = ledger.TemplateRecord{
			Name: "item " + string(rune('A'+i)),
			Uri:  "https://example.com/" + string(rune('a'+i)),
		}
	}
	if 0 != records {
		liveCount, err := minting.AppendRecords(operatorAccount, handle, 0, templates)
		if nil != err {
			t.Fatalf("append records error: %s", err)
		}
		if uint32(records) != liveCount {
			t.Fatalf("live count: %d  expected: %d", liveCount, records)
		}
	}
	return handle
}
