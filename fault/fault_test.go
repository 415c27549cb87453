// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/dropmint/dropmintd/fault"
)

// test that each error class is detected by its own predicate only
func TestErrorClasses(t *testing.T) {

	if !fault.IsErrInvalid(fault.ErrInvalidIdentifierLength) {
		t.Errorf("identifier length error is not a validation error")
	}
	if fault.IsErrPayment(fault.ErrInvalidIdentifierLength) {
		t.Errorf("identifier length error misdetected as payment error")
	}

	if !fault.IsErrCapacity(fault.ErrSoldOut) {
		t.Errorf("sold out is not a capacity error")
	}
	if !fault.IsErrCapacity(fault.ErrCountOverflow) {
		t.Errorf("count overflow is not a capacity error")
	}

	if !fault.IsErrAuthorization(fault.ErrNotAvailableYet) {
		t.Errorf("not available yet is not an authorization error")
	}

	if !fault.IsErrPayment(fault.ErrAssetMismatch) {
		t.Errorf("asset mismatch is not a payment error")
	}
	if !fault.IsErrPayment(fault.ErrInsufficientFunds) {
		t.Errorf("insufficient funds is not a payment error")
	}

	if !fault.IsErrExists(fault.ErrRecordAlreadyIssued) {
		t.Errorf("already issued is not an exists error")
	}
}

// errors must compare equal to themselves and unequal to others
func TestErrorIdentity(t *testing.T) {

	err := func() error {
		return fault.ErrSoldOut
	}()

	if fault.ErrSoldOut != err {
		t.Errorf("error identity lost across return")
	}
	if fault.ErrCountOverflow == err {
		t.Errorf("distinct errors compare equal")
	}
	if "all items have been redeemed" != err.Error() {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
