// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fileio - streaming readers and writers for line, CSV row
// and fixed size binary record files
//
// Callers describe their record types by implementing the small
// marshalling interfaces; the readers return io.EOF once the file is
// exhausted.  Writers buffer and must be flushed or closed.
package fileio
