// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - daemon configuration file handling
//
// the configuration file is a Lua program whose final expression is a
// table; it is executed in a fresh interpreter and the table is mapped
// onto the Configuration structure
package configuration
