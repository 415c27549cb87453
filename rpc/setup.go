// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"

	"github.com/dropmint/dropmintd/fault"
)

const (
	tlsName = "client_rpc"
)

// RPCConfiguration - configuration file data for the RPC setup
type RPCConfiguration struct {
	MaximumConnections int      `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener *listener.MultiListener
	argument *serverArgument

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the RPC listeners
func Initialise(configuration *RPCConfiguration, version string, fundsService FundsService) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if configuration.MaximumConnections <= 0 {
		log.Errorf("invalid %s maximum connection limit: %d", tlsName, configuration.MaximumConnections)
		return fault.ErrMissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen addresses", tlsName)
		return fault.ErrMissingParameters
	}

	tlsConfiguration, _, err := loadCertificate(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	server := createServer(log, version, fundsService)
	globalData.argument = &serverArgument{
		log:    logger.New("rpc-server"),
		server: server,
	}

	limiter := listener.NewLimiter(configuration.MaximumConnections)
	ml, err := listener.NewMultiListener(tlsName, configuration.Listen, tlsConfiguration, limiter, callback)
	if nil != err {
		log.Errorf("invalid %s listen addresses", tlsName)
		return err
	}
	globalData.listener = ml
	globalData.listener.Start(globalData.argument)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop the RPC listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Stop()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
