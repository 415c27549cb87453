// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/dropmint/dropmintd/rpc"
)

// GetInfo - request status from dropmintd (must be matching version)
func (client *Client) GetInfo() (*rpc.InfoReply, error) {
	var reply rpc.InfoReply
	if err := client.client.Call("Node.Info", rpc.InfoArguments{}, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// GetInfoCompat - request status from dropmintd (any version)
func (client *Client) GetInfoCompat() (map[string]interface{}, error) {
	var reply map[string]interface{}
	if err := client.client.Call("Node.Info", rpc.InfoArguments{}, &reply); nil != err {
		return nil, err
	}

	return reply, nil
}
