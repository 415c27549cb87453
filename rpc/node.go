// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/dropmint/dropmintd/minting"
)

// Node - type for the RPC
type Node struct {
	log     *logger.L
	version string
	start   time.Time
}

// return some information about this node

// InfoArguments - empty arguments for the info RPC
type InfoArguments struct{}

// InfoReply - result from the info RPC
type InfoReply struct {
	Configurations uint64 `json:"configurations"`
	ClaimLedgers   uint64 `json:"claimLedgers"`
	Claims         uint64 `json:"claims"`
	Connections    uint64 `json:"connections"`
	Version        string `json:"version"`
	Uptime         string `json:"uptime"`
}

// Info - daemon status summary
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {

	configurations, claimLedgers, claims := minting.Counts()

	reply.Configurations = configurations
	reply.ClaimLedgers = claimLedgers
	reply.Claims = claims
	reply.Connections = connectionCount.Uint64()
	reply.Version = node.version
	reply.Uptime = time.Since(node.start).String()

	return nil
}
