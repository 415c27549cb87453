// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minting

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/dropmint/dropmintd/counter"
	"github.com/dropmint/dropmintd/fault"
	"github.com/dropmint/dropmintd/payment"
)

// globals for background process
type mintingData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	transferrer payment.Transferrer // moves funds during settlement
	issuer      Issuer              // mints the permanent records

	// operation counters
	configurationCounter counter.Counter
	claimLedgerCounter   counter.Counter
	claimCounter         counter.Counter

	// set once during initialise
	initialised bool
}

// global data
var globalData mintingData

// Initialise - supply the external collaborators and start the module
func Initialise(transferrer payment.Transferrer, issuer Issuer) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if nil == transferrer || nil == issuer {
		return fault.ErrMissingParameters
	}

	globalData.log = logger.New("minting")
	globalData.log.Info("starting…")

	globalData.transferrer = transferrer
	globalData.issuer = issuer

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the module
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.transferrer = nil
	globalData.issuer = nil

	// finally...
	globalData.initialised = false

	return nil
}

// Counts - operation counts since start, for the node info call
func Counts() (configurations uint64, claimLedgers uint64, claims uint64) {
	return globalData.configurationCounter.Uint64(),
		globalData.claimLedgerCounter.Uint64(),
		globalData.claimCounter.Uint64()
}
