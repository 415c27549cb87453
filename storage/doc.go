// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database split into prefixed pools, one
// pool per record kind.  Each value is an opaque byte region owned by
// the module that writes it.
//
// All exported pools are in the Pool structure and are only valid
// between Initialise and Finalise.  A Batch stages writes to several
// pools and commits them in one atomic LevelDB write, which is what
// gives every externally invoked operation its all-or-nothing
// behaviour.
package storage
