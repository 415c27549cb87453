// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package minting - the claim state machine
//
// ties together the packed configuration region, the per sale claim
// ledger state, payment settlement and the external issuance service
//
// each operation is a single atomic step: all of its storage writes go
// through one batch that is only committed after every validation and
// every delegated call has succeeded
//
// must be initialised with a payment.Transferrer and an Issuer before
// any operation is invoked
package minting
