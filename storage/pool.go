// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
)

// PoolHandle - handle of a record pool inside the database
type PoolHandle struct {
	prefix byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// cache key for a pool record
func (p *PoolHandle) cacheKey(key []byte) string {
	return string(p.prefixKey(key))
}

// Put - store a key/value bytes pair
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		logger.Panic("pool.Put nil database")
		return
	}
	err := poolData.database.Put(p.prefixKey(key), value, nil)
	logger.PanicIfError("pool.Put", err)
	poolData.cache.set(p.cacheKey(key), value)
}

// Delete - remove a key
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		logger.Panic("pool.Delete nil database")
		return
	}
	err := poolData.database.Delete(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Delete", err)
	poolData.cache.remove(p.cacheKey(key))
}

// Get - read the value for a given key
//
// returns nil if the record was not found
// the result is a copy, callers may modify it freely
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil
	}

	if value, found := poolData.cache.get(p.cacheKey(key)); found {
		result := make([]byte, len(value))
		copy(result, value)
		return result
	}

	value, err := poolData.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	poolData.cache.set(p.cacheKey(key), value)

	result := make([]byte, len(value))
	copy(result, value)
	return result
}

// GetN - read a value and decode its first 8 bytes as big endian uint64
//
// second return is false if the record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// PutN - store an 8 byte big endian uint64 value
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return false
	}
	if _, found := poolData.cache.get(p.cacheKey(key)); found {
		return true
	}
	value, err := poolData.database.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return value
}
