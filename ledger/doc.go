// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - packed record formats for the minting ledger
//
// A sale is stored as one contiguous byte region:
//
//	configuration header | 4 byte LE live count | declared capacity × fixed slots
//
// Each slot is two length prefixed, zero padded strings (name and
// uri).  The region size is fixed when the configuration is created
// and never changes.  Appending template records and bumping the live
// count are in-place patches of the backing bytes; the region is never
// decoded and re-encoded as a whole, since the capacity can be in the
// thousands.
//
// The claim ledger state is a small fixed width record of its own,
// with the redeemed counter at a fixed offset so that a claim patches
// just those 8 bytes.
//
// All integers are little endian.  A length prefix of a padded field
// is the padded width; trailing zero bytes are not part of the logical
// string.
package ledger
