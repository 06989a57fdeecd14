// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
//
// left and right are the owning links; up is a non-owning back
// reference used only for climbing, never for ownership
type Node[T any] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	up     *Node[T] // points to parent node
	value  T
	height int // 1 for a solitary node
}

// NewNode - create a detached node ready for InsertNode; the node
// keeps its identity after insertion so the caller may also index it
// elsewhere
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{
		value:  value,
		height: 1,
	}
}

// Value - read the value stored in a node
func (p *Node[T]) Value() T {
	return p.value
}

// Left - left child of a node, nil if none
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - right child of a node, nil if none
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Parent - return parent node of a node
func (p *Node[T]) Parent() *Node[T] {
	return p.up
}

// Height - cached subtree height; an absent node has height zero
func (p *Node[T]) Height() int {
	if nil == p {
		return 0
	}
	return p.height
}

// Depth - get the depth of a node
func (p *Node[T]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// recompute the cached height from the children
func (p *Node[T]) refreshHeight() {
	p.height = 1 + max(p.left.Height(), p.right.Height())
}

// repoint the child pointer of parent that refers to old at node
func relinkParent[T any](parent, old, node *Node[T]) {
	if nil == parent {
		return
	}
	if parent.left == old {
		parent.left = node
	}
	if parent.right == old {
		parent.right = node
	}
}
