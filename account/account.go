// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - ed25519 based caller identities
//
// An account is the raw 32 byte ed25519 public key.  The textual form
// is Base58 over the key followed by a 4 byte SHA3-256 checksum.
package account

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/dropmint/dropmintd/fault"
)

// miscellaneous constants
const (
	AccountLength  = ed25519.PublicKeySize
	checksumLength = 4
)

// Account - the raw public key bytes
// to get a byte slice just use account[:]
type Account [AccountLength]byte

// Signature - raw ed25519 signature bytes
type Signature []byte

// AccountFromBase58 - convert the checksummed Base58 form back to an account
func AccountFromBase58(s string) (Account, error) {
	var account Account

	decoded, err := base58.Decode(s)
	if nil != err {
		return account, fault.ErrCannotDecodeAccount
	}
	if AccountLength+checksumLength != len(decoded) {
		return account, fault.ErrInvalidKeyLength
	}

	checksum := sha3.Sum256(decoded[:AccountLength])
	if !bytes.Equal(checksum[:checksumLength], decoded[AccountLength:]) {
		return account, fault.ErrChecksumMismatch
	}

	copy(account[:], decoded[:AccountLength])
	return account, nil
}

// CheckSignature - verify an ed25519 signature over a message
func (account Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(account[:]), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// IsZero - detect an unset account
func (account Account) IsZero() bool {
	return account == Account{}
}

// String - checksummed Base58 form for use by the fmt package (for %s)
func (account Account) String() string {
	checksum := sha3.Sum256(account[:])
	buffer := make([]byte, 0, AccountLength+checksumLength)
	buffer = append(buffer, account[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for use by the fmt package (for %#v)
func (account Account) GoString() string {
	return "<account:" + account.String() + ">"
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert from the Base58 JSON form
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	*account = a
	return nil
}

// MarshalText - convert a signature to its hex JSON form
func (signature Signature) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(signature))
	b := make([]byte, size)
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - convert a signature from its hex JSON form
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	_, err := hex.Decode(sig, s)
	if nil != err {
		return err
	}
	*signature = sig
	return nil
}
