// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/kwik-go/kwik/avl"
	"github.com/kwik-go/kwik/fileio"
	"github.com/kwik-go/kwik/format"
	"github.com/kwik-go/kwik/hashlist"
	"github.com/kwik-go/kwik/progress"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultItemCount = 1000000

// result - a single timed benchmark phase
type result struct {
	name       string
	operations uint64
	elapsed    time.Duration
}

// MarshalRow - render one result as a CSV record
func (r *result) MarshalRow(row []string) []string {
	perSecond := float64(r.operations) / r.elapsed.Seconds()
	return append(row,
		r.name,
		strconv.FormatUint(r.operations, 10),
		strconv.FormatInt(r.elapsed.Milliseconds(), 10),
		strconv.FormatUint(uint64(perSecond), 10),
	)
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "items", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "csv-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'o'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--quiet] [--items=N] [--seed=N] [--csv-file=FILE]", program)
	}

	itemCount := defaultItemCount
	if len(options["items"]) > 0 {
		itemCount, err = strconv.Atoi(options["items"][0])
		if nil != err || itemCount <= 0 {
			exitwithstatus.Message("%s: invalid item count: %q", program, options["items"][0])
		}
	}

	seed := time.Now().UnixNano()
	if len(options["seed"]) > 0 {
		seed, err = strconv.ParseInt(options["seed"][0], 10, 64)
		if nil != err {
			exitwithstatus.Message("%s: invalid seed: %q", program, options["seed"][0])
		}
	}

	quiet := len(options["quiet"]) > 0

	// distinct keys in random order
	rng := rand.New(rand.NewSource(seed))
	keys := rng.Perm(itemCount)

	if !quiet {
		fmt.Printf("benchmarking with %s items (seed %d)\n", format.Number(uint64(itemCount)), seed)
	}

	results := make([]*result, 0, 8)
	results = append(results, runTreePhases(keys, quiet)...)
	results = append(results, runListPhases(keys, quiet)...)

	var memory runtime.MemStats
	runtime.ReadMemStats(&memory)

	if !quiet {
		fmt.Println()
		for _, r := range results {
			perSecond := float64(r.operations) / r.elapsed.Seconds()
			fmt.Printf("%-16s %12s ops  %14s  %12s ops/s\n",
				r.name,
				format.Number(r.operations),
				format.Timespan(uint64(r.elapsed.Milliseconds())),
				format.Number(uint64(perSecond)),
			)
		}
		fmt.Printf("\nheap in use: %s\n", format.Memory(float64(memory.HeapInuse), 2))
	}

	if len(options["csv-file"]) > 0 {
		err = writeResults(options["csv-file"][0], results)
		if nil != err {
			exitwithstatus.Message("%s: csv write error: %s", program, err)
		}
	}
}

// runTreePhases - time insert, search and remove over the ordered tree
func runTreePhases(keys []int, quiet bool) []*result {
	tree := avl.New[int]()

	insert := phase("tree insert", keys, quiet, func(key int) {
		tree.Insert(key)
	})

	found := 0
	search := phase("tree search", keys, quiet, func(key int) {
		if nil != tree.Search(key) {
			found += 1
		}
	})
	if found != len(keys) {
		exitwithstatus.Message("tree search only found %d of %d keys", found, len(keys))
	}

	remove := phase("tree remove", keys, quiet, func(key int) {
		tree.Remove(key)
	})
	if !tree.IsEmpty() {
		exitwithstatus.Message("tree still holds %d keys after removal", tree.Count())
	}

	return []*result{insert, search, remove}
}

// runListPhases - time push, lookup and promotion over the hashed list
func runListPhases(keys []int, quiet bool) []*result {
	list := hashlist.New[int, int]()

	push := phase("list push", keys, quiet, func(key int) {
		_ = list.PushBack(key, key)
	})

	get := phase("list get", keys, quiet, func(key int) {
		_ = list.Get(key)
	})

	promote := phase("list promote", keys, quiet, func(key int) {
		if node := list.Get(key); nil != node {
			list.MoveFront(node)
		}
	})

	return []*result{push, get, promote}
}

// phase - run one operation over every key behind a progress bar
func phase(name string, keys []int, quiet bool, op func(int)) *result {
	var bar *progress.Bar
	if !quiet {
		fmt.Printf("%s\n", name)
		bar = progress.New(uint64(len(keys)))
	}

	start := time.Now()
	for _, key := range keys {
		op(key)
		if nil != bar {
			bar.Tick()
		}
	}

	return &result{
		name:       name,
		operations: uint64(len(keys)),
		elapsed:    time.Since(start),
	}
}

// writeResults - append all phase results to a CSV file
func writeResults(fileName string, results []*result) error {
	writer, err := fileio.NewCsvWriter(fileName)
	if nil != err {
		return err
	}

	for _, r := range results {
		if err := writer.Write(r); nil != err {
			_ = writer.Close()
			return err
		}
	}
	err = writer.Close()
	if nil != err {
		_ = os.Remove(fileName)
	}
	return err
}
