// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/dropmint/dropmintd/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	err := storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}

// basic pool operations
func TestPutGetDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	key := []byte("the-key")
	value := []byte("the-value")

	if p.Has(key) {
		t.Fatalf("key present before put")
	}

	p.Put(key, value)
	if !p.Has(key) {
		t.Fatalf("key absent after put")
	}
	if returned := p.Get(key); !bytes.Equal(value, returned) {
		t.Errorf("get: %q  expected: %q", returned, value)
	}

	// a second read hits the cache, must still be a private copy
	first := p.Get(key)
	first[0] = 'X'
	if returned := p.Get(key); !bytes.Equal(value, returned) {
		t.Errorf("cached value was aliased: %q", returned)
	}

	p.Delete(key)
	if p.Has(key) {
		t.Errorf("key present after delete")
	}
	if nil != p.Get(key) {
		t.Errorf("get after delete returned data")
	}
}

// pools with different prefixes must not collide
func TestPoolSeparation(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("shared-key")

	storage.Pool.Configurations.Put(key, []byte("configuration"))
	storage.Pool.ClaimLedgers.Put(key, []byte("claim ledger"))

	if v := storage.Pool.Configurations.Get(key); !bytes.Equal([]byte("configuration"), v) {
		t.Errorf("configuration pool: %q", v)
	}
	if v := storage.Pool.ClaimLedgers.Get(key); !bytes.Equal([]byte("claim ledger"), v) {
		t.Errorf("claim ledger pool: %q", v)
	}
}

// 8 byte counter records
func TestGetNPutN(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.Balances
	key := []byte("some-account")

	if _, found := p.GetN(key); found {
		t.Fatalf("value present before put")
	}

	p.PutN(key, 314159)
	n, found := p.GetN(key)
	if !found {
		t.Fatalf("value absent after put")
	}
	if 314159 != n {
		t.Errorf("value: %d  expected: %d", n, 314159)
	}
}

// batched writes are all or nothing and invisible until commit
func TestBatchCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	one := []byte("one")
	two := []byte("two")

	b := storage.NewBatch()
	b.Put(storage.Pool.TestData, one, []byte("1"))
	b.Put(storage.Pool.TestData, two, []byte("2"))

	if storage.Pool.TestData.Has(one) {
		t.Fatalf("staged write visible before commit")
	}

	if err := b.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if !storage.Pool.TestData.Has(one) || !storage.Pool.TestData.Has(two) {
		t.Errorf("writes missing after commit")
	}

	// double commit must fail
	if err := b.Commit(); nil == err {
		t.Errorf("second commit accepted")
	}
}

// abandoned batches leave no trace
func TestBatchAbandon(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("ghost")

	b := storage.NewBatch()
	b.Put(storage.Pool.TestData, key, []byte("data"))
	b.Abandon()

	if err := b.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	if storage.Pool.TestData.Has(key) {
		t.Errorf("abandoned write reached the database")
	}
}

// data survives close and reopen
func TestPersistence(t *testing.T) {
	setup(t)

	key := []byte("durable")
	storage.Pool.TestData.Put(key, []byte("data"))
	storage.Finalise()

	err := storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	defer teardown(t)

	if v := storage.Pool.TestData.Get(key); !bytes.Equal([]byte("data"), v) {
		t.Errorf("data lost across restart: %q", v)
	}
}
