// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the JSON RPC calls
//
// the provided calls are:
//
//	Ledger.Create       - store a sale configuration with its template region
//	Ledger.Append       - patch template records into a configuration
//	ClaimLedger.Create  - store the mutable sale state for a configuration
//	Claim.Execute       - redeem one item against payment
//	Funds.Deposit       - local network faucet for the native asset
//	Funds.CreateHolding - create an asset holding for an account
//	Funds.Balance       - native balance query
//	Node.Info           - daemon status summary
//
// mutating calls carry the caller account and an ed25519 signature
// over the canonical packed form of the request
package rpc
