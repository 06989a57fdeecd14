// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package progress - a console progress indicator
//
// A fixed width bar redrawn in place on a terminal, showing per cent
// complete and the current update rate.  Not safe for concurrent use
// from multiple go routines.
package progress

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/kwik-go/kwik/format"
)

const (
	width     = 70
	filled    = '='
	current   = '>'
	remaining = ' '
)

// Bar - type to hold one progress indicator
type Bar struct {
	out   io.Writer
	total uint64
	value uint64

	rateTime     time.Time
	rateCount    uint64
	previousRate uint64
}

// New - create a bar for total expected updates, drawing to stdout
func New(total uint64) *Bar {
	return NewWriter(os.Stdout, total)
}

// NewWriter - create a bar drawing to a specific writer
func NewWriter(out io.Writer, total uint64) *Bar {
	bar := &Bar{
		out:      out,
		total:    total,
		rateTime: time.Now(),
	}
	bar.draw(0, 0)
	return bar
}

// Tick - advance the bar by one update
func (bar *Bar) Tick() {
	bar.Add(1)
}

// Add - advance the bar by a number of updates
func (bar *Bar) Add(amount uint64) {
	bar.Set(bar.value + amount)
}

// Set - move the bar to an absolute position
func (bar *Bar) Set(value uint64) {
	previous := bar.value
	bar.value = value

	percent := uint64(100 * float64(bar.value) / float64(bar.total))
	previousPercent := uint64(100 * float64(previous) / float64(bar.total))

	rate := bar.rate()

	// nothing visible changed and the bar is not finishing, so skip
	// the redraw
	if percent == previousPercent && rate == bar.previousRate && percent != 100 {
		return
	}

	bar.draw(percent, rate)
	bar.previousRate = rate

	if percent == 100 {
		fmt.Fprintln(bar.out)
	}
}

// updates per second, recomputed once per second
func (bar *Bar) rate() uint64 {
	bar.rateCount += 1

	now := time.Now()
	elapsed := now.Sub(bar.rateTime)

	if elapsed >= time.Second {
		rate := float64(bar.rateCount) / elapsed.Seconds()

		bar.rateTime = now
		bar.rateCount = 0

		return uint64(math.Round(rate))
	}

	return bar.previousRate
}

func (bar *Bar) draw(percent uint64, rate uint64) {
	position := int(width * float64(percent) / 100)

	fmt.Fprint(bar.out, "\033[2K\r[")

	for i := 0; i < width; i += 1 {
		c := byte(remaining)
		switch {
		case i < position:
			c = filled
		case i == position:
			c = current
		}
		fmt.Fprintf(bar.out, "%c", c)
	}

	fmt.Fprintf(bar.out, "] %d %%", percent)

	// a finished bar shows no rate
	if percent < 100 {
		fmt.Fprintf(bar.out, " (%s tps)", format.Number(rate))
	}

	fmt.Fprint(bar.out, "\r")
}
