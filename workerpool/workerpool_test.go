// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workerpool_test

import (
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/kwik-go/kwik/fault"
	"github.com/kwik-go/kwik/workerpool"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "workerpool-test")
	if nil != err {
		panic(err)
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      "workerpool-test.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(err)
	}

	code := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestInvalidSize(t *testing.T) {
	_, err := workerpool.New(0)
	if !fault.IsErrInvalid(err) {
		t.Fatalf("expected invalid size error, got: %v", err)
	}
}

func TestWaitAll(t *testing.T) {
	pool, err := workerpool.New(4)
	if nil != err {
		t.Fatalf("new pool: %s", err)
	}
	defer pool.Stop()

	count := int64(0)
	for i := 0; i < 100; i += 1 {
		_, err := pool.Add(func() {
			atomic.AddInt64(&count, 1)
		})
		if nil != err {
			t.Fatalf("add: %s", err)
		}
	}

	pool.Wait()
	if n := atomic.LoadInt64(&count); n != 100 {
		t.Fatalf("completed: %d  expected: 100", n)
	}
}

func TestWaitJob(t *testing.T) {
	pool, err := workerpool.New(2)
	if nil != err {
		t.Fatalf("new pool: %s", err)
	}
	defer pool.Stop()

	done := int32(0)
	id, err := pool.Add(func() {
		time.Sleep(10 * time.Millisecond)
		atomic.StoreInt32(&done, 1)
	})
	if nil != err {
		t.Fatalf("add: %s", err)
	}

	if err := pool.WaitJob(id); nil != err {
		t.Fatalf("wait job: %s", err)
	}
	if 1 != atomic.LoadInt32(&done) {
		t.Fatal("job not complete after WaitJob")
	}

	// waiting again on a finished job returns immediately
	if err := pool.WaitJob(id); nil != err {
		t.Fatalf("second wait job: %s", err)
	}

	if err := pool.WaitJob(9999); !fault.IsErrNotFound(err) {
		t.Fatalf("expected not found error, got: %v", err)
	}
}

func TestStop(t *testing.T) {
	pool, err := workerpool.New(1)
	if nil != err {
		t.Fatalf("new pool: %s", err)
	}

	pool.Wait() // idle pool: returns at once

	_, err = pool.Add(func() {})
	if nil != err {
		t.Fatalf("add: %s", err)
	}
	pool.Wait()

	pool.Stop()
	pool.Stop() // idempotent

	if _, err := pool.Add(func() {}); !fault.IsErrProcess(err) {
		t.Fatalf("expected stopped pool error, got: %v", err)
	}
}

func TestParallelism(t *testing.T) {
	pool, err := workerpool.New(8)
	if nil != err {
		t.Fatalf("new pool: %s", err)
	}
	defer pool.Stop()

	start := time.Now()
	for i := 0; i < 8; i += 1 {
		_, err := pool.Add(func() {
			time.Sleep(50 * time.Millisecond)
		})
		if nil != err {
			t.Fatalf("add: %s", err)
		}
	}
	pool.Wait()

	// eight 50 ms jobs over eight workers must overlap
	if elapsed := time.Since(start); elapsed > 300*time.Millisecond {
		t.Fatalf("jobs did not run in parallel: %s", elapsed)
	}
}
