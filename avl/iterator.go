// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest value
func (tree *Tree[T]) First() *Node[T] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node[T]) first() *Node[T] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest value
func (tree *Tree[T]) Last() *Node[T] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node[T]) last() *Node[T] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest value
// or nil if no more nodes.
func (tree *Node[T]) Next() *Node[T] {
	if tree.right != nil {
		return tree.right.first()
	}
	for tree.up != nil && tree.up.right == tree {
		tree = tree.up
	}
	return tree.up
}

// Prev - given a node, return the node with the next lowest value or
// nil if no more nodes
func (tree *Node[T]) Prev() *Node[T] {
	if tree.left != nil {
		return tree.left.last()
	}
	for tree.up != nil && tree.up.left == tree {
		tree = tree.up
	}
	return tree.up
}
