// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workerpool - a bounded pool of worker go routines draining
// a queue of submitted jobs
//
// Jobs are identified by the id returned from Add so a caller can
// block on one specific job or on the whole pool going idle.  Stop
// lets running jobs finish, discards anything still queued and joins
// the workers.
package workerpool

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/kwik-go/kwik/counter"
	"github.com/kwik-go/kwik/fault"
)

// JobID - identifies one submitted job
type JobID uint32

// a queued unit of work
type job struct {
	id   JobID
	task func()
	done chan struct{} // closed on completion
}

// Pool - type to hold the worker pool state
type Pool struct {
	log *logger.L

	sync.Mutex // protects queue, jobs, stopped
	queue      []*job
	jobs       map[JobID]*job
	stopped    bool
	nextID     JobID

	fetch   *sync.Cond // signalled when work is queued or stopping
	idle    *sync.Cond // signalled when a job finishes
	running counter.Counter
	workers sync.WaitGroup
}

// New - start a pool of size workers
func New(size int) (*Pool, error) {
	if size <= 0 {
		return nil, fault.ErrInvalidPoolSize
	}

	log := logger.New("workerpool")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	pool := &Pool{
		log:  log,
		jobs: make(map[JobID]*job),
	}
	pool.fetch = sync.NewCond(pool)
	pool.idle = sync.NewCond(pool)

	log.Infof("starting %d workers", size)

	for i := 0; i < size; i += 1 {
		pool.workers.Add(1)
		go pool.worker(i)
	}

	return pool, nil
}

// Add - queue one job, returning its id
func (pool *Pool) Add(task func()) (JobID, error) {
	pool.Lock()
	defer pool.Unlock()

	if pool.stopped {
		return 0, fault.ErrPoolIsStopped
	}

	pool.nextID += 1
	j := &job{
		id:   pool.nextID,
		task: task,
		done: make(chan struct{}),
	}

	pool.queue = append(pool.queue, j)
	pool.jobs[j.id] = j
	pool.fetch.Signal()

	return j.id, nil
}

// Wait - block until no jobs are queued or running
func (pool *Pool) Wait() {
	pool.Lock()
	for 0 != len(pool.queue) || !pool.running.IsZero() {
		pool.idle.Wait()
	}
	pool.Unlock()
}

// WaitJob - block until the job with the given id is no longer
// pending
//
// a job that already completed, or was discarded by Stop, returns
// immediately; only an id that was never issued is an error
func (pool *Pool) WaitJob(id JobID) error {
	pool.Lock()
	j, ok := pool.jobs[id]
	issued := id > 0 && id <= pool.nextID
	pool.Unlock()

	if !ok {
		if issued {
			return nil
		}
		return fault.ErrUnknownJob
	}

	<-j.done
	return nil
}

// Stop - let running jobs finish, discard queued ones and join the
// workers; safe to call more than once
func (pool *Pool) Stop() {
	pool.Lock()
	if pool.stopped {
		pool.Unlock()
		return
	}
	pool.stopped = true
	dropped := len(pool.queue)
	for _, j := range pool.queue {
		close(j.done) // unblock any WaitJob on a discarded job
		delete(pool.jobs, j.id)
	}
	pool.queue = nil
	pool.fetch.Broadcast()
	pool.idle.Broadcast()
	pool.Unlock()

	pool.workers.Wait()
	pool.log.Infof("stopped, %d queued jobs dropped", dropped)
}

// worker loop: block for work, run it, signal completion
func (pool *Pool) worker(n int) {
	defer pool.workers.Done()

	log := pool.log
	log.Debugf("worker[%d]: starting", n)

	for {
		pool.Lock()
		for !pool.stopped && 0 == len(pool.queue) {
			pool.fetch.Wait()
		}
		if pool.stopped {
			pool.Unlock()
			log.Debugf("worker[%d]: stopping", n)
			return
		}

		j := pool.queue[0]
		pool.queue = pool.queue[1:]
		pool.running.Increment()
		pool.Unlock()

		j.task()

		pool.Lock()
		pool.running.Decrement()
		close(j.done)
		delete(pool.jobs, j.id) // completed jobs are not retained
		pool.idle.Broadcast()
		pool.Unlock()
	}
}
