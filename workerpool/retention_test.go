// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workerpool

import (
	"testing"
)

// a long lived pool fed many short jobs must not accumulate entries
// for jobs that already finished
func TestCompletedJobsNotRetained(t *testing.T) {
	pool, err := New(2)
	if nil != err {
		t.Fatalf("new pool: %s", err)
	}
	defer pool.Stop()

	const jobCount = 500

	ids := make([]JobID, 0, jobCount)
	for i := 0; i < jobCount; i += 1 {
		id, err := pool.Add(func() {})
		if nil != err {
			t.Fatalf("add: %s", err)
		}
		ids = append(ids, id)
	}
	pool.Wait()

	pool.Lock()
	retained := len(pool.jobs)
	pool.Unlock()
	if 0 != retained {
		t.Fatalf("%d completed jobs still retained", retained)
	}

	// an already completed id is not an error to wait on
	for _, id := range ids {
		if err := pool.WaitJob(id); nil != err {
			t.Fatalf("wait on completed job %d: %s", id, err)
		}
	}
}

func TestStoppedPoolDropsQueuedJobs(t *testing.T) {
	pool, err := New(1)
	if nil != err {
		t.Fatalf("new pool: %s", err)
	}

	block := make(chan struct{})
	release := func() { <-block }

	if _, err := pool.Add(release); nil != err {
		t.Fatalf("add: %s", err)
	}

	queued := make([]JobID, 0, 10)
	for i := 0; i < 10; i += 1 {
		id, err := pool.Add(func() {})
		if nil != err {
			t.Fatalf("add: %s", err)
		}
		queued = append(queued, id)
	}

	close(block)
	pool.Stop()

	pool.Lock()
	retained := len(pool.jobs)
	pool.Unlock()
	if 0 != retained {
		t.Fatalf("%d dropped jobs still retained", retained)
	}

	for _, id := range queued {
		if err := pool.WaitJob(id); nil != err {
			t.Fatalf("wait on dropped job %d: %s", id, err)
		}
	}
}
