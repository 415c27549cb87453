// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel for last-gasp messages
var log *logger.L

// Initialise - setup a log channel for late failure messages
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// Critical - log a simple string
func Critical(message string) {
	if nil != log {
		log.Critical(message)
		log.Flush()
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	if nil != log {
		log.Criticalf(format, arguments...)
		log.Flush()
	}
}

// Panicf - log a formatted message then panic
func Panicf(format string, arguments ...interface{}) {
	Criticalf(format, arguments...)
	panic(fmt.Sprintf(format, arguments...))
}
