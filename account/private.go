// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/dropmint/dropmintd/fault"
)

// PrivateKey - raw ed25519 private key bytes
type PrivateKey []byte

// NewAccount - generate a fresh key pair
func NewAccount() (Account, PrivateKey, error) {
	var account Account

	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return account, nil, err
	}

	copy(account[:], publicKey)
	return account, PrivateKey(privateKey), nil
}

// PrivateKeyFromBase58 - convert the checksummed Base58 form back to a private key
func PrivateKeyFromBase58(s string) (PrivateKey, error) {
	decoded, err := base58.Decode(s)
	if nil != err {
		return nil, fault.ErrCannotDecodeAccount
	}
	if ed25519.PrivateKeySize+checksumLength != len(decoded) {
		return nil, fault.ErrInvalidKeyLength
	}

	checksum := sha3.Sum256(decoded[:ed25519.PrivateKeySize])
	if !bytes.Equal(checksum[:checksumLength], decoded[ed25519.PrivateKeySize:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return PrivateKey(decoded[:ed25519.PrivateKeySize]), nil
}

// Sign - produce an ed25519 signature over a message
func (privateKey PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(ed25519.PrivateKey(privateKey), message))
}

// Account - the public half of the key pair
func (privateKey PrivateKey) Account() Account {
	var account Account
	copy(account[:], ed25519.PrivateKey(privateKey).Public().(ed25519.PublicKey))
	return account
}

// String - checksummed Base58 form
func (privateKey PrivateKey) String() string {
	checksum := sha3.Sum256(privateKey)
	buffer := make([]byte, 0, len(privateKey)+checksumLength)
	buffer = append(buffer, privateKey...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}
