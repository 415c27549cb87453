// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storagehandle_test

import (
	"testing"

	"github.com/dropmint/dropmintd/storagehandle"
)

// derivation must be a pure function of tag and seeds
func TestDeriveIsDeterministic(t *testing.T) {

	one := storagehandle.Derive("ledger", []byte("operator"), []byte("abc123"))
	two := storagehandle.Derive("ledger", []byte("operator"), []byte("abc123"))

	if one != two {
		t.Errorf("same seeds derived different handles: %s != %s", one, two)
	}
}

// different tags or seeds must give different handles
func TestDeriveSeparation(t *testing.T) {

	base := storagehandle.Derive("ledger", []byte("operator"), []byte("abc123"))

	if other := storagehandle.Derive("claim", []byte("operator"), []byte("abc123")); base == other {
		t.Errorf("different tag derived equal handle")
	}
	if other := storagehandle.Derive("ledger", []byte("operator"), []byte("abc124")); base == other {
		t.Errorf("different seed derived equal handle")
	}

	// seed boundaries must matter: ("ab","c") != ("a","bc")
	left := storagehandle.Derive("ledger", []byte("ab"), []byte("c"))
	right := storagehandle.Derive("ledger", []byte("a"), []byte("bc"))
	if left == right {
		t.Errorf("seed boundary ignored in derivation")
	}
}

// round trip the Base58 text form
func TestBase58RoundTrip(t *testing.T) {

	handle := storagehandle.Derive("ledger", []byte("round"), []byte("trip"))

	recovered, err := storagehandle.HandleFromBase58(handle.String())
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	if recovered != handle {
		t.Errorf("round trip mismatch: %s != %s", recovered, handle)
	}

	if _, err := storagehandle.HandleFromBase58("abc"); nil == err {
		t.Errorf("short text accepted")
	}
}
