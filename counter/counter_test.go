// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/dropmint/dropmintd/counter"
)

// simple up/down counting
func TestCounter(t *testing.T) {

	var c counter.Counter

	if !c.IsZero() {
		t.Errorf("counter is not zero at start: %d", c.Uint64())
	}

	for i := 0; i < 7; i += 1 {
		c.Increment()
	}
	if 7 != c.Uint64() {
		t.Errorf("counter is not 7 after incrementing: %d", c.Uint64())
	}

	for i := 0; i < 7; i += 1 {
		c.Decrement()
	}
	if !c.IsZero() {
		t.Errorf("counter did not return to zero: %d", c.Uint64())
	}
}

// concurrent increments must not lose updates
func TestCounterConcurrent(t *testing.T) {

	var c counter.Counter
	var wg sync.WaitGroup

	for g := 0; g < 8; g += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if 8000 != c.Uint64() {
		t.Errorf("lost updates: %d", c.Uint64())
	}
}
