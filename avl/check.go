// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[T]) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[T any](p *Node[T], up *Node[T]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.value, p.up, up)
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckHeights - check every cached height against the recomputed
// value
func (tree *Tree[T]) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

func checkHeights[T any](p *Node[T]) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, okl := checkHeights(p.left)
	hr, okr := checkHeights(p.right)
	h := 1 + max(hl, hr)
	if !okl || !okr {
		return h, false
	}
	if h != p.height {
		fmt.Printf("height fail at node: %v   cached: %d  actual: %d\n", p.value, p.height, h)
		return h, false
	}
	return h, true
}

// CheckCount - check the stored count against the number of nodes
// reachable from the root
func (tree *Tree[T]) CheckCount() bool {
	return tree.count == countNodes(tree.root)
}

func countNodes[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}
