// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/dropmint/dropmintd/fault"
)

// Batch - staged writes across several pools
//
// nothing reaches the database until Commit, which performs a single
// atomic LevelDB write; either every staged write lands or none do
type Batch struct {
	batch   *leveldb.Batch
	staged  []stagedWrite
	written bool
}

type stagedWrite struct {
	cacheKey string
	removed  bool
	value    []byte
}

// NewBatch - create an empty batch
func NewBatch() *Batch {
	return &Batch{
		batch: new(leveldb.Batch),
	}
}

// Put - stage a key/value pair for a pool
func (b *Batch) Put(p *PoolHandle, key []byte, value []byte) {
	b.batch.Put(p.prefixKey(key), value)
	b.staged = append(b.staged, stagedWrite{
		cacheKey: p.cacheKey(key),
		value:    value,
	})
}

// Delete - stage a key removal for a pool
func (b *Batch) Delete(p *PoolHandle, key []byte) {
	b.batch.Delete(p.prefixKey(key))
	b.staged = append(b.staged, stagedWrite{
		cacheKey: p.cacheKey(key),
		removed:  true,
	})
}

// Commit - atomically apply all staged writes
//
// a batch can commit only once
func (b *Batch) Commit() error {
	poolData.RLock()
	defer poolData.RUnlock()

	if b.written {
		return fault.ErrAlreadyInitialised
	}
	if nil == poolData.database {
		return fault.ErrNotInitialised
	}

	err := poolData.database.Write(b.batch, nil)
	if nil != err {
		return err
	}
	b.written = true

	// cache only reflects committed data
	for _, w := range b.staged {
		if w.removed {
			poolData.cache.remove(w.cacheKey)
		} else {
			poolData.cache.set(w.cacheKey, w.value)
		}
	}
	return nil
}

// Abandon - discard all staged writes
func (b *Batch) Abandon() {
	if b.written {
		logger.Panic("batch.Abandon after Commit")
	}
	b.batch.Reset()
	b.staged = nil
}
