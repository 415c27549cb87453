// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/dropmint/dropmintd/counter"
)

// the argument passed to the callback
type serverArgument struct {
	log    *logger.L
	server *rpc.Server
}

var connectionCount counter.Counter

// ConnectionCount - number of connections currently being served
func ConnectionCount() uint64 {
	return connectionCount.Uint64()
}

// create the RPC server with all services registered
func createServer(log *logger.L, version string, fundsService FundsService) *rpc.Server {

	start := time.Now()

	server := rpc.NewServer()

	server.Register(&Ledger{
		log:     log,
		limiter: rate.NewLimiter(200, 100),
	})
	server.Register(&ClaimLedger{
		log:     log,
		limiter: rate.NewLimiter(10, 5),
	})
	server.Register(&Claim{
		log:     log,
		limiter: rate.NewLimiter(50, 20),
	})
	server.Register(&Funds{
		log:     log,
		limiter: rate.NewLimiter(10, 5),
		service: fundsService,
	})
	server.Register(&Node{
		log:     log,
		version: version,
		start:   start,
	})

	return server
}

// listener callback
func callback(conn io.ReadWriteCloser, argument interface{}) {

	serverArgument := argument.(*serverArgument)

	log := serverArgument.log
	log.Info("starting…")

	server := serverArgument.server

	connectionCount.Increment()
	defer connectionCount.Decrement()

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	server.ServeCodec(codec)

	log.Info("finished")
}
