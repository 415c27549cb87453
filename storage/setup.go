// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/dropmint/dropmintd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Configurations *PoolHandle `prefix:"C"` // configuration handle → packed region
	ClaimLedgers   *PoolHandle `prefix:"M"` // claim ledger handle → packed state
	Balances       *PoolHandle `prefix:"B"` // account → native balance
	Holdings       *PoolHandle `prefix:"H"` // holding handle → packed holding
	Issues         *PoolHandle `prefix:"I"` // item handle → packed descriptive record
	Editions       *PoolHandle `prefix:"E"` // item handle → packed edition lock
	TestData       *PoolHandle `prefix:"Z"` // reserved for testing
}

// Pool - the set of exported pools
var Pool pools

// holds the database handle
var poolData struct {
	sync.RWMutex
	database *leveldb.DB
	cache    readCache
}

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.database {
		return fault.ErrAlreadyInitialised
	}

	db, err := leveldb.OpenFile(database, nil)
	if nil != err {
		return err
	}

	poolData.database = db
	poolData.cache = newReadCache()

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field to locate its prefix tag
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			poolData.database = nil
			return fault.ErrInvalidStructPointer
		}

		p := &PoolHandle{
			prefix: prefixTag[0],
		}
		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.database {
		return
	}

	poolData.cache.clear()
	poolData.database.Close()
	poolData.database = nil
}
