// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// balancer - strategy consulted on each ancestor during the climb
// back from an insertion; it returns the node to use as that level's
// subtree root, which may differ from its argument after a rotation
type balancer[T any] interface {
	rebalance(root *Node[T]) *Node[T]
}

// nopBalancer - leaves the tree a plain ordered BST
type nopBalancer[T any] struct{}

func (nopBalancer[T]) rebalance(root *Node[T]) *Node[T] {
	return root
}

// avlBalancer - restores the AVL invariant along the insertion path
type avlBalancer[T any] struct{}

// balanceFactor - height(left) - height(right); an absent node has
// balance factor zero
func balanceFactor[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return p.left.Height() - p.right.Height()
}

func (avlBalancer[T]) rebalance(root *Node[T]) *Node[T] {
	factor := balanceFactor(root)

	if factor > 1 {
		if balanceFactor(root.left) > 0 {
			return rotateLL(root)
		}
		return rotateLR(root)
	}

	if factor < -1 {
		if balanceFactor(root.right) > 0 {
			return rotateRL(root)
		}
		return rotateRR(root)
	}

	return root
}

// single RR rotation: pivot the right child up
//
// heights are recomputed old root first since the pivot's new height
// depends on it
func rotateRR[T any](root *Node[T]) *Node[T] {
	pivot := root.right
	root.right = pivot.left
	pivot.left = root

	root.refreshHeight()
	pivot.refreshHeight()

	return pivot
}

// single LL rotation: pivot the left child up
func rotateLL[T any](root *Node[T]) *Node[T] {
	pivot := root.left
	root.left = pivot.right
	pivot.right = root

	root.refreshHeight()
	pivot.refreshHeight()

	return pivot
}

// double LR rotation: rotate the left child's right-heavy imbalance
// away, then pivot the left child up
func rotateLR[T any](root *Node[T]) *Node[T] {
	root.left = rotateRR(root.left)
	return rotateLL(root)
}

// double RL rotation: mirror of LR
func rotateRL[T any](root *Node[T]) *Node[T] {
	root.right = rotateLL(root.right)
	return rotateRR(root)
}
