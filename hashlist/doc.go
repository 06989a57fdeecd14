// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashlist - a doubly linked list whose nodes are also
// indexed by a unique key, giving O(1) lookup, removal and
// repositioning by key
//
// Note: an individual list is not thread safe; serialise access
//       externally when sharing between go routines.
//
// Node handles are stable: a node keeps its identity through any
// number of moves, so a caller may hold one and reposition it without
// another lookup.
package hashlist
