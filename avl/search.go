// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node whose value compares equal, nil if absent
func (tree *Tree[T]) Search(value T) *Node[T] {
	p := tree.root
	for p != nil {
		switch c := tree.compare(value, p.value); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
