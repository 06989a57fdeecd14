// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered binary search tree with the addition of
// parent pointers to allow iteration through the nodes, specialised
// by default as an AVL balanced tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its subtree; a solitary node has
// height 1.  Rebalancing is pluggable: the default balancer restores
// the AVL invariant with single or double rotations on the climb back
// from an insertion.  Deletion refreshes heights but never rotates,
// so a long run of deletions can leave an insertion-balanced tree
// outside the AVL bound while still being a valid ordered tree.
//
// Inserting a value that compares equal to an existing one leaves the
// tree unchanged and keeps the existing node, so node handles stay
// valid for callers that also index nodes elsewhere.
package avl
