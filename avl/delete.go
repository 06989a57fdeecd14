// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - delete the node whose value compares equal
// returns true if a node was removed; absent values are a no-op
func (tree *Tree[T]) Remove(value T) bool {
	node := tree.Search(value)
	if nil == node {
		return false
	}
	tree.RemoveNode(node)
	return true
}

// RemoveNode - detach a node from the tree and discard it
//
// the node must belong to this tree; this is not checked.  A removed
// two child node is replaced by the extreme of its taller immediate
// subtree: the maximum of the left subtree when it is strictly
// taller, otherwise the minimum of the right subtree, so a height tie
// promotes the in-order successor.  This keeps the replacement close
// to the removed node and tends to preserve balance, since no
// rebalancing runs on this path: heights are refreshed on the climb
// to the root but the balancer is never consulted.
func (tree *Tree[T]) RemoveNode(node *Node[T]) {
	if nil == node {
		return
	}

	tree.count -= 1

	var promote *Node[T]
	start := node.up // deepest node needing a height refresh

	switch {
	case node.left != nil && node.right != nil:
		if node.left.Height() > node.right.Height() {
			promote = node.left.last()
		} else {
			promote = node.right.first()
		}

		if promote.up == node {
			// promoted node is an immediate child: it keeps its own
			// subtree and takes over the removed node's other side
			start = promote
			if node.left == promote {
				promote.right = node.right
				node.right.up = promote
			} else {
				promote.left = node.left
				node.left.up = promote
			}
		} else {
			// splice the promoted node out of its old position,
			// handing its single subtree (an extreme node has at
			// most one child) to its old parent, then give it both
			// of the removed node's subtrees
			start = promote.up

			child := promote.left
			if nil == child {
				child = promote.right
			}
			relinkParent(promote.up, promote, child)
			if child != nil {
				child.up = promote.up
			}

			promote.left = node.left
			promote.right = node.right
			node.left.up = promote
			node.right.up = promote
		}

	case node.left != nil:
		// the promoted child is moved up whole, keeping both of its
		// own subtrees
		promote = node.left
		start = promote

	case node.right != nil:
		promote = node.right
		start = promote
	}

	if promote != nil {
		promote.up = node.up
	}
	relinkParent(node.up, node, promote)

	if tree.root == node {
		tree.root = promote
	}

	for p := start; p != nil; p = p.up {
		p.refreshHeight()
	}

	// scrub the removed node so a stale handle cannot reach the tree
	node.left = nil
	node.right = nil
	node.up = nil
	node.height = 1
}
