// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// expiry of cached records
const (
	cacheCleanupInterval = 1 * time.Minute
	cacheExpiration      = 2 * time.Minute
)

// read-through cache fronting pool reads
//
// a removed key is cached as removed so that a Get after Delete does
// not hit the database again inside the expiry window
type readCache interface {
	get(key string) ([]byte, bool)
	set(key string, value []byte)
	remove(key string)
	clear()
}

type cachedState int

const (
	cachedPresent cachedState = iota
	cachedRemoved
)

type cacheEntry struct {
	state cachedState
	value []byte
}

type dbCache struct {
	cache *gocache.Cache
}

func newReadCache() readCache {
	return &dbCache{
		cache: gocache.New(cacheCleanupInterval, cacheExpiration),
	}
}

func (c *dbCache) get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	entry := obj.(cacheEntry)
	if cachedRemoved == entry.state {
		return nil, false
	}
	return entry.value, true
}

func (c *dbCache) set(key string, value []byte) {
	c.cache.Set(key, cacheEntry{state: cachedPresent, value: value}, cacheExpiration)
}

func (c *dbCache) remove(key string) {
	c.cache.Set(key, cacheEntry{state: cachedRemoved}, cacheExpiration)
}

func (c *dbCache) clear() {
	c.cache.Flush()
}
