// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/dropmint/dropmintd/account"
)

func TestParseCreator(t *testing.T) {

	owner, _, err := account.NewAccount()
	if nil != err {
		t.Fatalf("generate account error: %s", err)
	}

	creator, err := parseCreator(owner.String() + ":60")
	if nil != err {
		t.Fatalf("parse creator error: %s", err)
	}
	if creator.Address != owner {
		t.Errorf("creator account: %s  expected: %s", creator.Address, owner)
	}
	if 60 != creator.Share {
		t.Errorf("creator share: %d  expected: 60", creator.Share)
	}
	if creator.Verified {
		t.Error("creator unexpectedly verified")
	}

	invalid := []string{
		"",
		":60",
		owner.String(),
		owner.String() + ":",
		owner.String() + ":300",
		"garbage:10",
	}
	for i, s := range invalid {
		if _, err := parseCreator(s); nil == err {
			t.Errorf("%d: parse creator: %q unexpectedly succeeded", i, s)
		}
	}
}

func TestParseRecord(t *testing.T) {

	record, err := parseRecord("item one,https://example.com/one.json")
	if nil != err {
		t.Fatalf("parse record error: %s", err)
	}
	if "item one" != record.Name {
		t.Errorf("record name: %q  expected: %q", record.Name, "item one")
	}
	if "https://example.com/one.json" != record.Uri {
		t.Errorf("record uri: %q  expected: %q", record.Uri, "https://example.com/one.json")
	}

	for i, s := range []string{"", "no separator", ",uri", "name,"} {
		if _, err := parseRecord(s); nil == err {
			t.Errorf("%d: parse record: %q unexpectedly succeeded", i, s)
		}
	}
}
