// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package format - human readable rendering of numbers, byte sizes
// and durations for console output
package format

import (
	"fmt"
	"strings"
)

// memory unit names, each step is 1024 of the previous
var memoryUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// Number - group the digits of a value with comma separators
func Number(value uint64) string {
	s := fmt.Sprintf("%d", value)

	n := len(s)
	if n <= 3 {
		return s
	}

	grouped := strings.Builder{}
	first := n % 3
	if first > 0 {
		grouped.WriteString(s[:first])
	}
	for i := first; i < n; i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteString(s[i : i+3])
	}
	return grouped.String()
}

// Memory - render a byte count scaled to the largest unit that keeps
// the integer part non-zero, with the requested number of decimals
func Memory(value float64, precision int) string {
	count := 0
	for uint64(value)/1024 > 0 && count < len(memoryUnits)-1 {
		value /= 1024
		count += 1
	}
	return fmt.Sprintf("%.*f %s", precision, value, memoryUnits[count])
}

// Timespan - render a millisecond count as d.hh:mm:ss.mmm eliding
// the leading components that are zero
func Timespan(milliseconds uint64) string {
	days := milliseconds / 1000 / 60 / 60 / 24
	milliseconds -= days * 1000 * 60 * 60 * 24

	hours := milliseconds / 1000 / 60 / 60
	milliseconds -= hours * 1000 * 60 * 60

	minutes := milliseconds / 1000 / 60
	milliseconds -= minutes * 1000 * 60

	seconds := milliseconds / 1000
	milliseconds -= seconds * 1000

	s := strings.Builder{}
	started := false

	if days > 0 {
		fmt.Fprintf(&s, "%d.", days)
		started = true
	}
	if started || hours > 0 {
		s.WriteString(pad(hours, started, 2))
		s.WriteByte(':')
		started = true
	}
	if started || minutes > 0 {
		s.WriteString(pad(minutes, started, 2))
		s.WriteByte(':')
		started = true
	}
	if started || seconds > 0 {
		s.WriteString(pad(seconds, started, 2))
		s.WriteByte('.')
		started = true
	}
	s.WriteString(pad(milliseconds, started, 3))

	return s.String()
}

func pad(value uint64, padded bool, width int) string {
	if !padded {
		return fmt.Sprintf("%d", value)
	}
	return fmt.Sprintf("%0*d", width, value)
}

// Bytes - dump data as a Go byte slice literal, for generating the
// expected values used by some test routines
func Bytes(name string, data []byte) string {
	a := strings.Split(fmt.Sprintf("% #x", data), " ")
	s := name + " := []byte{"
	n := 8
	for i := 0; i < len(a); i += 1 {
		n += 1
		if n >= 8 {
			s += "\n\t"
			n = 0
		}
		s += a[i] + ", "
	}
	return s + "\n}"
}
