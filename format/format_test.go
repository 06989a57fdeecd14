// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package format_test

import (
	"testing"

	"github.com/kwik-go/kwik/format"
)

func TestNumber(t *testing.T) {
	testItems := []struct {
		value    uint64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{18446744073709551615, "18,446,744,073,709,551,615"},
	}

	for _, item := range testItems {
		if actual := format.Number(item.value); actual != item.expected {
			t.Errorf("number: %d  actual: %q  expected: %q", item.value, actual, item.expected)
		}
	}
}

func TestMemory(t *testing.T) {
	testItems := []struct {
		value     float64
		precision int
		expected  string
	}{
		{0, 0, "0 B"},
		{512, 0, "512 B"},
		{1024, 0, "1 KiB"},
		{1536, 1, "1.5 KiB"},
		{1048576, 0, "1 MiB"},
		{1073741824, 2, "1.00 GiB"},
	}

	for _, item := range testItems {
		actual := format.Memory(item.value, item.precision)
		if actual != item.expected {
			t.Errorf("memory: %f  actual: %q  expected: %q", item.value, actual, item.expected)
		}
	}
}

func TestTimespan(t *testing.T) {
	testItems := []struct {
		milliseconds uint64
		expected     string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.000"},
		{61000, "1:01.000"},
		{61500, "1:01.500"},
		{3661000, "1:01:01.000"},
		{90061001, "1.01:01:01.001"},
	}

	for _, item := range testItems {
		actual := format.Timespan(item.milliseconds)
		if actual != item.expected {
			t.Errorf("timespan: %d  actual: %q  expected: %q", item.milliseconds, actual, item.expected)
		}
	}
}

func TestBytes(t *testing.T) {
	actual := format.Bytes("sample", []byte{0xde, 0xad, 0xbe, 0xef})
	expected := "sample := []byte{\n\t0xde, 0xad, 0xbe, 0xef, \n}"
	if actual != expected {
		t.Errorf("bytes: actual: %q  expected: %q", actual, expected)
	}

	// the line wraps after the seventh value
	actual = format.Bytes("longer", []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	})
	expected = "longer := []byte{\n\t" +
		"0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, " +
		"\n\t0x07, 0x08, \n}"
	if actual != expected {
		t.Errorf("bytes: actual: %q  expected: %q", actual, expected)
	}
}
