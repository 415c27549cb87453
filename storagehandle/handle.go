// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storagehandle - deterministic keyless storage handles
//
// A handle locates a storage region.  It is derived purely from a tag
// and an ordered list of seed values, so any caller can recompute it
// without holding a private key.
package storagehandle

import (
	"encoding/binary"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/dropmint/dropmintd/fault"
)

// limits
const (
	HandleLength = 32
)

// Handle - the type for a storage handle
// to get a byte slice just use handle[:]
type Handle [HandleLength]byte

// Derive - compute a handle from a tag and seed values
//
// SHA3-256 over the tag and each seed, every part preceded by its
// 4 byte little endian length so that ("ab","c") and ("a","bc")
// derive different handles
func Derive(tag string, seeds ...[]byte) Handle {
	hasher := sha3.New256()

	length := make([]byte, 4)

	binary.LittleEndian.PutUint32(length, uint32(len(tag)))
	hasher.Write(length)
	hasher.Write([]byte(tag))

	for _, seed := range seeds {
		binary.LittleEndian.PutUint32(length, uint32(len(seed)))
		hasher.Write(length)
		hasher.Write(seed)
	}

	var handle Handle
	copy(handle[:], hasher.Sum(nil))
	return handle
}

// HandleFromBase58 - convert the Base58 form back to a handle
func HandleFromBase58(s string) (Handle, error) {
	var handle Handle

	decoded, err := base58.Decode(s)
	if nil != err {
		return handle, fault.ErrCannotDecodeHandle
	}
	if HandleLength != len(decoded) {
		return handle, fault.ErrCannotDecodeHandle
	}

	copy(handle[:], decoded)
	return handle, nil
}

// IsZero - detect an unset handle
func (handle Handle) IsZero() bool {
	return handle == Handle{}
}

// String - Base58 form for use by the fmt package (for %s)
func (handle Handle) String() string {
	return base58.Encode(handle[:])
}

// GoString - for use by the fmt package (for %#v)
func (handle Handle) GoString() string {
	return "<handle:" + handle.String() + ">"
}

// MarshalText - convert a handle to its Base58 JSON form
func (handle Handle) MarshalText() ([]byte, error) {
	return []byte(handle.String()), nil
}

// UnmarshalText - convert from the Base58 JSON form
func (handle *Handle) UnmarshalText(s []byte) error {
	h, err := HandleFromBase58(string(s))
	if nil != err {
		return err
	}
	*handle = h
	return nil
}
