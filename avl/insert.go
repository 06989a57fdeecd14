// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a value into the tree
// returns true if a node was added, false if an equal value was
// already present
func (tree *Tree[T]) Insert(value T) bool {
	return tree.InsertNode(NewNode(value))
}

// InsertNode - insert a pre-constructed node into the tree
//
// the node keeps its identity, so a caller that indexes nodes by some
// external key can hand one over and still hold a valid reference;
// if an equal value is already present the handed node is discarded
// and the existing node is untouched
func (tree *Tree[T]) InsertNode(node *Node[T]) bool {
	if nil == node {
		return false
	}

	node.left = nil
	node.right = nil
	node.up = nil
	node.height = 1

	// provisional increment, corrected below on a duplicate
	tree.count += 1
	added := true

	tree.root = tree.insert(tree.root, node, &added)
	tree.root.up = nil

	if !added {
		tree.count -= 1
	}
	return added
}

// internal routine for insert
//
// places the node then unwinds towards the root refreshing the cached
// height of each ancestor and consulting the balancer; the node the
// balancer returns becomes this level's subtree root for the level
// above
func (tree *Tree[T]) insert(root, node *Node[T], added *bool) *Node[T] {
	if nil == root {
		return node
	}

	switch c := tree.compare(node.value, root.value); {
	case c < 0:
		root.left = tree.insert(root.left, node, added)
		root.left.up = root
	case c > 0:
		root.right = tree.insert(root.right, node, added)
		root.right.up = root
	default:
		// equal values: keep the existing node, drop the new one
		*added = false
		return root
	}

	root.refreshHeight()

	p := tree.balancer.rebalance(root)
	if p != root {
		// a rotation repairs only left/right/height of the nodes it
		// moves; restore the up pointers of everything whose
		// attachment point crossed the rotation boundary, all of
		// which sits within two levels of the new subtree root
		relinkAfterRotation(p)
	}
	return p
}

// fix the up pointers below a rotated subtree root; the root's own up
// pointer is set by the level above in the unwind
func relinkAfterRotation[T any](root *Node[T]) {
	for _, p := range []*Node[T]{root, root.left, root.right} {
		if nil == p {
			continue
		}
		if p.left != nil {
			p.left.up = p
		}
		if p.right != nil {
			p.right.up = p
		}
	}
}
