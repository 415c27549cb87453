// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package funds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dropmint/dropmintd/fault"
	"github.com/dropmint/dropmintd/funds"
	"github.com/dropmint/dropmintd/storagehandle"
)

func TestHoldingRoundTrip(t *testing.T) {
	service := setup(t)
	defer teardown(t)

	owner := makeAccount(0x31)
	asset := storagehandle.Derive("asset", []byte("gold"))

	handle, err := service.CreateHolding(owner, asset, 125)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, funds.HoldingHandle(owner), handle, "wrong handle")

	holding, err := service.Holding(handle)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, asset, holding.Asset, "wrong asset")
	assert.Equal(t, owner, holding.Owner, "wrong owner")
	assert.Equal(t, uint64(125), holding.Balance, "wrong balance")

	_, err = service.Holding(storagehandle.Derive("asset", []byte("missing")))
	assert.Equal(t, fault.ErrRecordNotFound, err, "wrong error")
}
