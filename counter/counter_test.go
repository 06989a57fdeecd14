// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/kwik-go/kwik/counter"
)

func TestCounter(t *testing.T) {
	c := counter.Counter(0)

	if !c.IsZero() {
		t.Fatal("new counter not zero")
	}
	if n := c.Increment(); n != 1 {
		t.Fatalf("increment: %d  expected: 1", n)
	}
	if n := c.Increment(); n != 2 {
		t.Fatalf("increment: %d  expected: 2", n)
	}
	if n := c.Decrement(); n != 1 {
		t.Fatalf("decrement: %d  expected: 1", n)
	}
	if n := c.Uint64(); n != 1 {
		t.Fatalf("value: %d  expected: 1", n)
	}
	if n := c.Decrement(); n != 0 {
		t.Fatalf("decrement: %d  expected: 0", n)
	}
	if !c.IsZero() {
		t.Fatalf("counter: %d  expected: 0", c.Uint64())
	}
}

func TestCounterConcurrent(t *testing.T) {
	c := counter.Counter(0)

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if n := c.Uint64(); n != 10000 {
		t.Fatalf("count: %d  expected: 10000", n)
	}
}
